package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "textgraph_queries_total",
			Help: "Total number of graph queries by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textgraph_query_duration_seconds",
			Help:    "Query execution duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"operation"},
	)

	r.BridgeWordsSeen = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textgraph_bridge_words",
			Help:    "Size of bridge-word sets returned by queries",
			Buckets: []float64{0, 1, 2, 5, 10, 50},
		},
	)

	r.WalkLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textgraph_walk_length",
			Help:    "Number of vertices visited per random walk",
			Buckets: []float64{1, 2, 5, 10, 50, 100, 1000},
		},
	)

	r.PathLength = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textgraph_path_length",
			Help:    "Total weight of shortest paths found",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100},
		},
	)
}
