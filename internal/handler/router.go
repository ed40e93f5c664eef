package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nrad-K/go-jobfeed/internal/logger"
	"github.com/nrad-K/go-jobfeed/internal/usecase"
)

// RouterDepsは、NewRouterに必要な依存関係をまとめた構造体です。
type RouterDeps struct {
	Aggregator usecase.FeedAggregator
	Logger     logger.AppLogger
	Registry   *prometheus.Registry
}

// NewRouterは、フィードAPIの全エンドポイントを構成したルーターを返します。
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	h := NewFeedHandler(deps.Aggregator, deps.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/companies", h.Companies)
		r.Get("/companies/{companyDomain}/jobs", h.CompanyJobs)
		r.Get("/jobs", h.AllJobs)
	})

	r.Get("/healthz", h.Healthz)

	if deps.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
