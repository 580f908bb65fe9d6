package metrics

import (
	"runtime"
	"time"
)

// Query outcome labels
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusEmpty    = "empty"
	StatusError    = "error"
)

// RecordGraph records the size of a freshly built graph and its build time
func (r *Registry) RecordGraph(vertices, edges, tokens int, duration time.Duration) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
	r.GraphTokens.Set(float64(tokens))
	r.GraphBuildDuration.Observe(duration.Seconds())
}

// RecordQuery records one query execution
func (r *Registry) RecordQuery(operation, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(operation, status).Inc()
	r.QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordBridgeWords records the size of a bridge-word set
func (r *Registry) RecordBridgeWords(n int) {
	r.BridgeWordsSeen.Observe(float64(n))
}

// RecordWalk records the number of vertices a random walk visited
func (r *Registry) RecordWalk(visited int) {
	r.WalkLength.Observe(float64(visited))
}

// RecordPath records the length of a shortest path
func (r *Registry) RecordPath(length int) {
	r.PathLength.Observe(float64(length))
}

// RecordRender records a rasterizer run
func (r *Registry) RecordRender(success bool, duration time.Duration) {
	status := StatusOK
	if !success {
		status = StatusError
	}
	r.RenderTotal.WithLabelValues(status).Inc()
	r.RenderDuration.Observe(duration.Seconds())
}

// UpdateSystemMetrics refreshes uptime, goroutine and heap gauges
func (r *Registry) UpdateSystemMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.UptimeSeconds.Set(time.Since(r.startTime).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}
