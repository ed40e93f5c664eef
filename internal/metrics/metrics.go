// Package metrics はPrometheusメトリクスの収集を提供します。
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector は、アグリゲーターから利用するメトリクス収集のインターフェースです。
type Collector interface {
	RecordFetchSuccess()
	RecordFetchFailure()
	RecordBrokenDate()
}

// PromCollector は、Prometheusメトリクスを収集する実装です。
type PromCollector struct {
	fetchSuccess prometheus.Counter
	fetchFail    prometheus.Counter
	brokenDate   prometheus.Counter
}

// NewPromCollector は、新しいPromCollectorを生成し、
// 指定されたレジストリにメトリクスを登録します。
func NewPromCollector(reg prometheus.Registerer) *PromCollector {
	c := &PromCollector{
		fetchSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobfeed_fetch_success_total",
			Help: "フィード取得成功の合計数",
		}),
		fetchFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobfeed_fetch_fail_total",
			Help: "フィード取得失敗の合計数",
		}),
		brokenDate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobfeed_broken_publish_date_total",
			Help: "解釈できず制約なし扱いになった掲載期間日付の合計数",
		}),
	}

	reg.MustRegister(
		c.fetchSuccess,
		c.fetchFail,
		c.brokenDate,
	)
	return c
}

func (c *PromCollector) RecordFetchSuccess() { c.fetchSuccess.Inc() }
func (c *PromCollector) RecordFetchFailure() { c.fetchFail.Inc() }
func (c *PromCollector) RecordBrokenDate()   { c.brokenDate.Inc() }

// NopCollector は、何も記録しないCollectorです。exportコマンドなど
// メトリクスを公開しない構成で使用します。
type NopCollector struct{}

func (NopCollector) RecordFetchSuccess() {}
func (NopCollector) RecordFetchFailure() {}
func (NopCollector) RecordBrokenDate()   {}
