// Package metrics provides Prometheus metrics for BED ingestion.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tidx/ivtree/internal/version"
)

var (
	// registry is a custom registry to avoid exposing Go runtime metrics.
	registry = prometheus.NewRegistry()

	// versionInfo exposes version information as a gauge.
	versionInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ivtree_version_info",
			Help: "Version information",
		},
		[]string{"version"},
	)

	// intervalsLoadedTotal tracks accepted and rejected rows by shard.
	intervalsLoadedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ivtree_intervals_loaded_total",
			Help: "Total number of BED rows processed by outcome and shard",
		},
		[]string{"shard", "outcome"},
	)

	// shardsGauge tracks the number of live chromosome shards.
	shardsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ivtree_shards",
			Help: "Number of chromosome shards in the genome index",
		},
	)

	// intervalsGauge tracks the number of intervals stored across all shards.
	intervalsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ivtree_intervals",
			Help: "Number of intervals stored across all shards",
		},
	)
)

func init() {
	registry.MustRegister(versionInfo, intervalsLoadedTotal, shardsGauge, intervalsGauge)
	versionInfo.WithLabelValues(version.Get()).Set(1)
}

// NewCollector returns the Collector implementation backed by the package's
// registered Prometheus metrics.
func NewCollector() Collector {
	return prometheusCollector{}
}

type prometheusCollector struct{}

func (prometheusCollector) RecordLoad(shard string, accepted, rejected int) {
	intervalsLoadedTotal.WithLabelValues(shard, "accepted").Add(float64(accepted))
	intervalsLoadedTotal.WithLabelValues(shard, "rejected").Add(float64(rejected))
}

func (prometheusCollector) RecordShardTotals(shards int, intervals int) {
	shardsGauge.Set(float64(shards))
	intervalsGauge.Set(float64(intervals))
}

// Handler returns an HTTP handler for the metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Reset resets all metrics. This is intended for use in tests only.
func Reset() {
	intervalsLoadedTotal.Reset()
	shardsGauge.Set(0)
	intervalsGauge.Set(0)
	versionInfo.Reset()
	versionInfo.WithLabelValues(version.Get()).Set(1)
}
