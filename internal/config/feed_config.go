package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// FeedConfigは、フィード取り込みパイプラインの動作設定をまとめる構造体です。
type FeedConfig struct {
	CompanyFeedURL       string  `yaml:"company_feed_url" validate:"required,url"`                // 会社一覧フィードのURL
	SheetExportURLFormat string  `yaml:"sheet_export_url_format" validate:"required"`             // シートIDからCSVエクスポートURLを組み立てるテンプレート（%sを1つ含む）
	DefaultImagePath     string  `yaml:"default_image_path"`                                      // 画像URL未設定の会社に使うデフォルト画像
	CompanyHeaderRow     int     `yaml:"company_header_row" validate:"min=0"`                     // 会社フィードのヘッダー行（0始まり）
	CompanyDataStartRow  int     `yaml:"company_data_start_row" validate:"min=0"`                 // 会社フィードのデータ開始行（0始まり）
	JobHeaderRow         int     `yaml:"job_header_row" validate:"min=0"`                         // 求人シートのヘッダー行（0始まり）
	JobDataStartRow      int     `yaml:"job_data_start_row" validate:"min=0"`                     // 求人シートのデータ開始行（0始まり。2行目はテンプレート説明用の予約行）
	MaxWorkers           int     `yaml:"max_workers" validate:"min=1,max=10"`                     // 会社ごとの求人フェッチの並列数
	FetchTimeoutSeconds  int     `yaml:"fetch_timeout_seconds" validate:"min=1,max=300"`          // フェッチのタイムアウト（秒）
	RequestsPerSecond    float64 `yaml:"requests_per_second" validate:"gt=0"`                     // ホストごとの秒間リクエスト数
	MaxBodySizeBytes     int64   `yaml:"max_body_size_bytes" validate:"min=1024"`                 // レスポンスボディの上限サイズ
	UserAgent            string  `yaml:"user_agent" validate:"required,min=1"`                    // リクエストヘッダーに設定するUser-Agent
	CacheTTLSeconds      int     `yaml:"cache_ttl_seconds" validate:"min=0"`                      // フィードキャッシュのTTL（0で無効）
	ListenAddr           string  `yaml:"listen_addr"`                                             // serveモードの待ち受けアドレス
	AllowPrivateHosts    bool    `yaml:"allow_private_hosts"`                                     // SSRF防止を外してプライベートホストへの取得を許可する（開発用）
	ExportDir            string  `yaml:"export_dir"`                                              // exportコマンドの出力先ディレクトリ
	ExportFileName       string  `yaml:"export_file_name" validate:"omitempty,min=1,max=50"`      // exportコマンドの出力ファイル名
}

// バリデーターのインスタンス
var validate = validator.New()

// LoadFeedConfigは、YAMLファイルからFeedConfigを読み込みます。
// 行オフセットは省略時に既知のシートレイアウト
// （会社: ヘッダー0行目・データ1行目、求人: ヘッダー0行目・データ2行目）になります。
func LoadFeedConfig(path string) (FeedConfig, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return FeedConfig{}, fmt.Errorf("設定ファイルを読み込めませんでした: %w", err)
	}

	var cfg FeedConfig
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return FeedConfig{}, fmt.Errorf("YAMLの解析に失敗しました: %w", err)
	}

	applyDefaults(&cfg)

	// バリデーション
	if err := validate.Struct(cfg); err != nil {
		return FeedConfig{}, fmt.Errorf("設定のバリデーションに失敗しました: %w", err)
	}

	// カスタムバリデーション
	if strings.Count(cfg.SheetExportURLFormat, "%s") != 1 {
		return FeedConfig{}, fmt.Errorf("sheet_export_url_formatには%%sを1つ含める必要があります")
	}
	if cfg.CompanyDataStartRow <= cfg.CompanyHeaderRow {
		return FeedConfig{}, fmt.Errorf("company_data_start_rowはcompany_header_rowより後ろの行にしてください")
	}
	if cfg.JobDataStartRow <= cfg.JobHeaderRow {
		return FeedConfig{}, fmt.Errorf("job_data_start_rowはjob_header_rowより後ろの行にしてください")
	}

	return cfg, nil
}

func applyDefaults(cfg *FeedConfig) {
	if cfg.CompanyDataStartRow == 0 {
		cfg.CompanyDataStartRow = 1
	}
	if cfg.JobDataStartRow == 0 {
		cfg.JobDataStartRow = 2
	}
	if cfg.MaxWorkers == 0 {
		cfg.MaxWorkers = 3
	}
	if cfg.FetchTimeoutSeconds == 0 {
		cfg.FetchTimeoutSeconds = 30
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 2
	}
	if cfg.MaxBodySizeBytes == 0 {
		cfg.MaxBodySizeBytes = 10 << 20
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "output"
	}
	if cfg.ExportFileName == "" {
		cfg.ExportFileName = "all_jobs.csv"
	}
}
