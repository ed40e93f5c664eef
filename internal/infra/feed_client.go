package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/doyensec/safeurl"
)

// FeedClientArgs は、フィードクライアントを構築するための引数を保持します。
type FeedClientArgs struct {
	Timeout        time.Duration
	UserAgent      string
	MaxBodySize    int64
	RequestsPerSec float64
	Burst          int
	// HTTPClient を指定すると内蔵のSSRF防止クライアントの代わりに使用します。
	// テストおよび社内ネットワーク上のフィード向けです。
	HTTPClient *http.Client
}

// feedClient は、公開スプレッドシートのドキュメントをHTTPで取得します。
// repository.FeedRepositoryを実装します。
//
// フィードURLはシートを編集する運用者が入力するため、取得には
// SSRF防止付きのHTTPクライアントを使用します（プライベートIP・
// ループバック・メタデータIPへのリクエストはダイヤラー段階でブロックされます）。
type feedClient struct {
	client      *http.Client
	limiter     *hostLimiter
	userAgent   string
	maxBodySize int64
}

// NewFeedClient は、feedClientの新しいインスタンスを生成します。
func NewFeedClient(args FeedClientArgs) *feedClient {
	client := args.HTTPClient
	if client == nil {
		config := safeurl.GetConfigBuilder().
			SetTimeout(args.Timeout).
			SetAllowedSchemes("http", "https").
			SetAllowedPorts(80, 443).
			Build()
		client = safeurl.Client(config).Client
	}

	return &feedClient{
		client:      client,
		limiter:     newHostLimiter(args.RequestsPerSec, args.Burst),
		userAgent:   args.UserAgent,
		maxBodySize: args.MaxBodySize,
	}
}

// FetchDocument は、フィードURLからドキュメントを取得してCSVテキストとして返します。
// レスポンスがHTML（ウェブに公開されたシートのpubhtml形式）の場合は、
// 最初のtable要素からCSVを復元します。
// 2xx以外のステータスはエラーです。リトライはこの層では行いません。
func (c *feedClient) FetchDocument(ctx context.Context, rawURL string) (string, error) {
	if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
		return "", fmt.Errorf("レート制限の待機に失敗しました: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/csv, text/html;q=0.9, */*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("フィードの取得に失敗しました: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("フィードの取得に失敗しました: status=%d url=%s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize))
	if err != nil {
		return "", fmt.Errorf("レスポンスの読み取りに失敗しました: %w", err)
	}

	text := string(body)
	if isHTMLDocument(resp.Header.Get("Content-Type"), text) {
		csvText, err := TableToCSV(text)
		if err != nil {
			return "", fmt.Errorf("HTML形式のシートをCSVに復元できませんでした: %w", err)
		}
		return csvText, nil
	}

	return text, nil
}

func isHTMLDocument(contentType, body string) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html")
}
