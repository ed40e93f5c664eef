package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/nrad-K/go-jobfeed/internal/config"
	"github.com/nrad-K/go-jobfeed/internal/handler"
	"github.com/nrad-K/go-jobfeed/internal/logger"
	"github.com/nrad-K/go-jobfeed/internal/metrics"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "統合済みの会社・求人ビューをJSON APIとして配信します",
	Long: `会社フィードと求人シートの統合ビューをHTTPで配信します。
リクエストのたびにフィードを再取得・再解析するため、シートの編集は
即座に反映されます（短TTLキャッシュを設定した場合はTTLの範囲で遅延します）。`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// .envが無い環境ではそのまま続行する
		_ = godotenv.Load()

		cfg, err := config.LoadFeedConfig(serveConfigPath)
		if err != nil {
			log.Fatalf("設定ファイルの読み込みに失敗: %v", err)
		}

		appLogger := logger.NewTextLogger(os.Stdout)

		registry := prometheus.NewRegistry()
		collector := metrics.NewPromCollector(registry)

		aggregator := buildAggregator(ctx, cfg, appLogger, collector)

		router := handler.NewRouter(handler.RouterDeps{
			Aggregator: aggregator,
			Logger:     appLogger,
			Registry:   registry,
		})

		server := &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: router,
		}

		go func() {
			appLogger.Info("フィードAPIサーバーを起動します", "address", cfg.ListenAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				appLogger.Error("サーバーの起動に失敗しました", "error", err)
				stop()
			}
		}()

		<-ctx.Done()

		appLogger.Info("シャットダウンします")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("シャットダウンに失敗しました", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "settings/feed.yaml", "設定ファイルのパス")
}
