package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for a textgraph session
type Registry struct {
	// Graph Metrics
	GraphVertices      prometheus.Gauge
	GraphEdges         prometheus.Gauge
	GraphTokens        prometheus.Gauge
	GraphBuildDuration prometheus.Histogram

	// Query Metrics
	QueriesTotal    *prometheus.CounterVec
	QueryDuration   *prometheus.HistogramVec
	BridgeWordsSeen prometheus.Histogram
	WalkLength      prometheus.Histogram
	PathLength      prometheus.Histogram

	// Render Metrics
	RenderTotal    *prometheus.CounterVec
	RenderDuration prometheus.Histogram

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge

	registry  *prometheus.Registry
	startTime time.Time
	mu        sync.Mutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized.
// Each registry owns its own prometheus.Registry so tests never collide.
func NewRegistry() *Registry {
	r := &Registry{
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}

	r.initGraphMetrics()
	r.initQueryMetrics()
	r.initRenderMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
