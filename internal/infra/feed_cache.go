package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nrad-K/go-jobfeed/internal/domain/repository"
	"github.com/nrad-K/go-jobfeed/internal/logger"
)

// feedCache は、取得済みフィードドキュメントのredisキャッシュです。
// repository.FeedCacheを実装します。
// ページ表示のたびにシートを再取得する設計は変えず、低トラフィックでも
// 同一ページ内の連続アクセスを吸収する短TTLのキャッシュとして使います。
// redisへのアクセス失敗はすべてミスとして扱い、取得経路に影響させません。
type feedCache struct {
	redis  *redis.Client
	logger logger.AppLogger
}

// NewFeedCache は、feedCacheの新しいインスタンスを生成します。
func NewFeedCache(rds *redis.Client, appLogger logger.AppLogger) repository.FeedCache {
	return &feedCache{
		redis:  rds,
		logger: appLogger,
	}
}

func (c *feedCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.redis.Get(ctx, c.cacheKey(key)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Warn("キャッシュの読み取りに失敗したためミスとして扱います", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (c *feedCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.redis.Set(ctx, c.cacheKey(key), value, ttl).Err(); err != nil {
		c.logger.Warn("キャッシュの書き込みに失敗しました", "key", key, "error", err)
	}
}

func (c *feedCache) cacheKey(key string) string {
	return fmt.Sprintf("feed_doc:%s", key)
}

// NopFeedCache は、何もキャッシュしないFeedCacheです。
// redisが設定されていない構成で使用します。
type NopFeedCache struct{}

func (NopFeedCache) Get(ctx context.Context, key string) (string, bool)            { return "", false }
func (NopFeedCache) Set(ctx context.Context, key, value string, ttl time.Duration) {}

// cachedFeedRepository は、FeedRepositoryに短TTLキャッシュを重ねるデコレーターです。
type cachedFeedRepository struct {
	inner repository.FeedRepository
	cache repository.FeedCache
	ttl   time.Duration
}

// NewCachedFeedRepository は、innerの取得結果をキャッシュするリポジトリを生成します。
// ttlが0以下の場合はinnerをそのまま返します。
func NewCachedFeedRepository(inner repository.FeedRepository, cache repository.FeedCache, ttl time.Duration) repository.FeedRepository {
	if ttl <= 0 {
		return inner
	}
	return &cachedFeedRepository{
		inner: inner,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *cachedFeedRepository) FetchDocument(ctx context.Context, url string) (string, error) {
	if doc, ok := r.cache.Get(ctx, url); ok {
		return doc, nil
	}

	doc, err := r.inner.FetchDocument(ctx, url)
	if err != nil {
		return "", err
	}

	r.cache.Set(ctx, url, doc, r.ttl)
	return doc, nil
}
