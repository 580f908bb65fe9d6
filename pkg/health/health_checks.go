package health

import (
	"os/exec"
	"runtime"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// GraphCheck is unhealthy when the input had no words and degraded when it
// produced no edges.
func GraphCheck(g *graph.Graph) CheckFunc {
	return func() Check {
		stats := g.Stats()
		check := Check{
			Details: map[string]any{
				"vertices": stats.Vertices,
				"edges":    stats.Edges,
				"tokens":   stats.Tokens,
			},
		}

		switch {
		case stats.Vertices == 0 && stats.Tokens == 0:
			check.Status = StatusUnhealthy
			check.Message = "Graph is empty"
		case stats.Edges == 0:
			check.Status = StatusDegraded
			check.Message = "Graph has no edges"
		default:
			check.Status = StatusHealthy
			check.Message = "Graph loaded"
		}
		return check
	}
}

// RendererCheck is degraded when the layout command is not on PATH.
// Rendering failures never stop the program, so it is never unhealthy.
func RendererCheck(command string) CheckFunc {
	return func() Check {
		check := Check{Details: map[string]any{"command": command}}

		path, err := exec.LookPath(command)
		if err != nil {
			check.Status = StatusDegraded
			check.Message = err.Error()
			return check
		}

		check.Status = StatusHealthy
		check.Details["path"] = path
		return check
	}
}

// MemoryCheck is degraded when heap allocation exceeds 90% of memory
// obtained from the OS.
func MemoryCheck() CheckFunc {
	return memoryCheck(func() (uint64, uint64) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return m.Alloc, m.Sys
	})
}

func memoryCheck(getUsage func() (alloc, sys uint64)) CheckFunc {
	return func() Check {
		alloc, sys := getUsage()
		check := Check{
			Details: map[string]any{
				"alloc_bytes": alloc,
				"sys_bytes":   sys,
			},
		}

		if sys > 0 && float64(alloc)/float64(sys)*100 > 90 {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		} else {
			check.Status = StatusHealthy
			check.Message = "Memory usage normal"
		}
		return check
	}
}
