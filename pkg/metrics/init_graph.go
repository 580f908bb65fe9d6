package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "textgraph_graph_vertices",
			Help: "Number of distinct words in the graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "textgraph_graph_edges",
			Help: "Number of distinct directed word pairs",
		},
	)

	r.GraphTokens = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "textgraph_graph_tokens",
			Help: "Number of tokens the graph was built from",
		},
	)

	r.GraphBuildDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textgraph_build_duration_seconds",
			Help:    "Time to tokenize the input and build the graph",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)
}

func (r *Registry) initRenderMetrics() {
	r.RenderTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "textgraph_render_total",
			Help: "Rasterizer invocations by outcome",
		},
		[]string{"status"},
	)

	r.RenderDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textgraph_render_duration_seconds",
			Help:    "Time spent writing the DOT file and running the rasterizer",
			Buckets: []float64{0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}
