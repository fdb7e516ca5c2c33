// Package metric instruments every point-set query with opencensus
// measures, exported in Prometheus exposition format at /metrics. It
// replaces the teacher's bbolt-backed metric-object persistence, which
// this module has no use for: query statistics here are counters and
// latency distributions, not stored records.
package metric

import (
	"context"
	"fmt"
	"net/http"

	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/prometheus/common/model"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// KeyBackend distinguishes bruteforce from kdtree in exported metrics.
// KeyOp distinguishes contains/range/nearest/put.
var (
	KeyBackend = tag.MustNewKey("backend")
	KeyOp      = tag.MustNewKey("operation")
)

var (
	queryLatencyMs = stats.Float64("pointset/query_latency_ms", "query latency in milliseconds", stats.UnitMilliseconds)
	queryCount     = stats.Int64("pointset/query_count", "number of queries served", stats.UnitDimensionless)
)

var (
	queryLatencyView = &view.View{
		Name:        "pointset/query_latency_ms",
		Measure:     queryLatencyMs,
		Description: "distribution of point-set query latencies",
		TagKeys:     []tag.Key{KeyBackend, KeyOp},
		Aggregation: view.Distribution(0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000),
	}
	queryCountView = &view.View{
		Name:        "pointset/query_count",
		Measure:     queryCount,
		Description: "count of point-set queries served",
		TagKeys:     []tag.Key{KeyBackend, KeyOp},
		Aggregation: view.Count(),
	}
)

// Config names the metric namespace exposed at /metrics.
type Config struct {
	Namespace string `toml:"namespace" env:"POINTSET_METRICS_NAMESPACE,default=pointset"`
}

// NewExporter registers this package's views and returns the
// http.Handler that should be mounted at /metrics.
func NewExporter(cfg Config) (http.Handler, error) {
	if !model.IsValidMetricName(model.LabelValue(cfg.Namespace)) {
		return nil, fmt.Errorf("invalid metrics namespace %q", cfg.Namespace)
	}
	if err := view.Register(queryLatencyView, queryCountView); err != nil {
		return nil, fmt.Errorf("registering opencensus views: %w", err)
	}

	exporter, err := prometheus.NewExporter(prometheus.Options{Namespace: cfg.Namespace})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}
	return exporter, nil
}

// Record reports one query's backend, operation, and latency.
func Record(ctx context.Context, backend, operation string, latencyMs float64) {
	ctx, err := tag.New(ctx, tag.Upsert(KeyBackend, backend), tag.Upsert(KeyOp, operation))
	if err != nil {
		return
	}
	stats.Record(ctx, queryCount.M(1), queryLatencyMs.M(latencyMs))
}
