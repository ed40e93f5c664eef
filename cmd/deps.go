package cmd

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nrad-K/go-jobfeed/internal/config"
	"github.com/nrad-K/go-jobfeed/internal/constants"
	"github.com/nrad-K/go-jobfeed/internal/domain/repository"
	"github.com/nrad-K/go-jobfeed/internal/infra"
	"github.com/nrad-K/go-jobfeed/internal/logger"
	"github.com/nrad-K/go-jobfeed/internal/metrics"
	"github.com/nrad-K/go-jobfeed/internal/usecase"
)

// buildAggregatorは、設定に基づいて依存関係を組み立てたアグリゲーターを返します。
// REDIS_ADDRESSが設定されていればフィードキャッシュを有効化し、
// 接続できない場合はキャッシュなしで続行します。
func buildAggregator(ctx context.Context, cfg config.FeedConfig, appLogger logger.AppLogger, collector metrics.Collector) usecase.FeedAggregator {
	clientArgs := infra.FeedClientArgs{
		Timeout:        time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		UserAgent:      cfg.UserAgent,
		MaxBodySize:    cfg.MaxBodySizeBytes,
		RequestsPerSec: cfg.RequestsPerSecond,
		Burst:          1,
	}
	if cfg.AllowPrivateHosts {
		// 開発用: SSRF防止なしの素のクライアントを使用する
		clientArgs.HTTPClient = &http.Client{Timeout: clientArgs.Timeout}
	}

	var repo repository.FeedRepository = infra.NewFeedClient(clientArgs)

	if ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second; ttl > 0 {
		repo = infra.NewCachedFeedRepository(repo, buildFeedCache(ctx, appLogger), ttl)
	}

	normalizer := infra.NewHeaderNormalizer(constants.GetHeaderSynonyms())

	return usecase.NewFeedAggregator(usecase.AggregatorArgs{
		Cfg:     cfg,
		Repo:    repo,
		Parser:  infra.NewRecordParser(normalizer),
		Salary:  infra.NewSalaryParser(constants.GetSalaryPatterns()),
		Logger:  appLogger,
		Metrics: collector,
	})
}

func buildFeedCache(ctx context.Context, appLogger logger.AppLogger) repository.FeedCache {
	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		return infra.NopFeedCache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		appLogger.Warn("Redisへの接続に失敗したためキャッシュなしで続行します", "error", err)
		return infra.NopFeedCache{}
	}

	appLogger.Info("Redisへの接続を確認しました", "address", addr)
	return infra.NewFeedCache(rdb, appLogger)
}
