package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nrad-K/go-jobfeed/internal/config"
	"github.com/nrad-K/go-jobfeed/internal/constants"
	"github.com/nrad-K/go-jobfeed/internal/infra"
	"github.com/nrad-K/go-jobfeed/internal/logger"
	"github.com/nrad-K/go-jobfeed/internal/metrics"
)

var exportConfigPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "全会社の掲載中求人を統合してCSVに書き出します",
	Long: `会社フィードと会社ごとの求人シートを取得・正規化し、
掲載ルール（掲載フラグ・掲載期間）を適用した統合ビューをCSVファイルに保存します。`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// .envが無い環境ではそのまま続行する
		_ = godotenv.Load()

		cfg, err := config.LoadFeedConfig(exportConfigPath)
		if err != nil {
			log.Fatalf("設定ファイルの読み込みに失敗: %v", err)
		}

		appLogger := logger.NewTextLogger(os.Stdout)
		aggregator := buildAggregator(ctx, cfg, appLogger, metrics.NopCollector{})

		appLogger.Info("求人フィードの統合を開始します", "company_feed_url", cfg.CompanyFeedURL)
		jobs, err := aggregator.FetchAllJobs(ctx)
		if err != nil {
			appLogger.Error("求人フィードの統合に失敗しました", "error", err)
			os.Exit(1)
		}

		exporter, err := infra.NewCSVExporter(
			filepath.Join(cfg.ExportDir, cfg.ExportFileName),
			constants.GetJobExportHeaders(),
		)
		if err != nil {
			log.Fatalf("CSVエクスポーターの初期化に失敗しました: %v", err)
		}

		writtenCount := 0
		for _, job := range jobs {
			if err := exporter.Write(job); err != nil {
				appLogger.Error("求人情報の書き込みに失敗しました", "job_id", job.ID, "error", err)
				continue
			}
			writtenCount++
		}

		if err := exporter.Close(); err != nil {
			appLogger.Error("exporterのクローズに失敗しました", "error", err)
			os.Exit(1)
		}

		appLogger.Info("エクスポートが完了しました", "total_count", writtenCount)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportConfigPath, "config", "c", "settings/feed.yaml", "設定ファイルのパス")
}
