package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFeedConfig(t *testing.T) {
	t.Run("必須項目だけの設定にデフォルト値を補う", func(t *testing.T) {
		path := writeConfigFile(t, `
company_feed_url: "https://feeds.example.com/companies.csv"
sheet_export_url_format: "https://sheets.example.com/%s/export"
user_agent: "go-jobfeed/1.0"
`)

		cfg, err := LoadFeedConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 0, cfg.CompanyHeaderRow)
		assert.Equal(t, 1, cfg.CompanyDataStartRow)
		assert.Equal(t, 0, cfg.JobHeaderRow)
		assert.Equal(t, 2, cfg.JobDataStartRow)
		assert.Equal(t, 3, cfg.MaxWorkers)
		assert.Equal(t, 30, cfg.FetchTimeoutSeconds)
		assert.Equal(t, 2.0, cfg.RequestsPerSecond)
		assert.Equal(t, int64(10<<20), cfg.MaxBodySizeBytes)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.Equal(t, "output", cfg.ExportDir)
		assert.Equal(t, "all_jobs.csv", cfg.ExportFileName)
	})

	t.Run("明示した値はデフォルトで上書きしない", func(t *testing.T) {
		path := writeConfigFile(t, `
company_feed_url: "https://feeds.example.com/companies.csv"
sheet_export_url_format: "https://sheets.example.com/%s/export"
user_agent: "go-jobfeed/1.0"
job_data_start_row: 3
max_workers: 5
listen_addr: ":9090"
`)

		cfg, err := LoadFeedConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 3, cfg.JobDataStartRow)
		assert.Equal(t, 5, cfg.MaxWorkers)
		assert.Equal(t, ":9090", cfg.ListenAddr)
	})

	t.Run("company_feed_urlが欠けているとエラー", func(t *testing.T) {
		path := writeConfigFile(t, `
sheet_export_url_format: "https://sheets.example.com/%s/export"
user_agent: "go-jobfeed/1.0"
`)

		_, err := LoadFeedConfig(path)

		assert.Error(t, err)
	})

	t.Run("URLとして不正なcompany_feed_urlはエラー", func(t *testing.T) {
		path := writeConfigFile(t, `
company_feed_url: "not-a-url"
sheet_export_url_format: "https://sheets.example.com/%s/export"
user_agent: "go-jobfeed/1.0"
`)

		_, err := LoadFeedConfig(path)

		assert.Error(t, err)
	})

	t.Run("プレースホルダーのないエクスポートURLテンプレートはエラー", func(t *testing.T) {
		path := writeConfigFile(t, `
company_feed_url: "https://feeds.example.com/companies.csv"
sheet_export_url_format: "https://sheets.example.com/export"
user_agent: "go-jobfeed/1.0"
`)

		_, err := LoadFeedConfig(path)

		assert.Error(t, err)
	})

	t.Run("データ開始行がヘッダー行以下だとエラー", func(t *testing.T) {
		path := writeConfigFile(t, `
company_feed_url: "https://feeds.example.com/companies.csv"
sheet_export_url_format: "https://sheets.example.com/%s/export"
user_agent: "go-jobfeed/1.0"
job_header_row: 2
job_data_start_row: 2
`)

		_, err := LoadFeedConfig(path)

		assert.Error(t, err)
	})

	t.Run("並列数の上限を超えるとエラー", func(t *testing.T) {
		path := writeConfigFile(t, `
company_feed_url: "https://feeds.example.com/companies.csv"
sheet_export_url_format: "https://sheets.example.com/%s/export"
user_agent: "go-jobfeed/1.0"
max_workers: 11
`)

		_, err := LoadFeedConfig(path)

		assert.Error(t, err)
	})

	t.Run("ファイルが存在しない場合はエラー", func(t *testing.T) {
		_, err := LoadFeedConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
	})
}
