package repository

import (
	"context"
	"time"
)

// FeedRepository は、公開されたスプレッドシートのドキュメントを取得するインターフェースです。
// 返り値はCSVテキストです（HTML形式で公開されたシートは実装側でCSVに復元します）。
type FeedRepository interface {
	FetchDocument(ctx context.Context, url string) (string, error)
}

// FeedCache は、取得済みドキュメントの短TTLキャッシュのインターフェースです。
// キャッシュの失敗はすべて「ミス」として扱われ、直接取得にフォールバックします。
type FeedCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}
