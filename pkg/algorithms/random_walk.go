package algorithms

import (
	"math/rand/v2"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// WalkStop says why a random walk ended.
type WalkStop int

const (
	// WalkDeadEnd means the last vertex had no outgoing edges.
	WalkDeadEnd WalkStop = iota
	// WalkRepeatedEdge means the walk drew an edge it had already taken.
	WalkRepeatedEdge
)

func (s WalkStop) String() string {
	if s == WalkRepeatedEdge {
		return "repeated_edge"
	}
	return "dead_end"
}

// WalkOptions tunes RandomWalk.
type WalkOptions struct {
	// IncludeRepeatedTarget appends the target of the repeated edge before
	// stopping. By default the walk ends at the edge's source.
	IncludeRepeatedTarget bool
}

// WalkResult is a finished walk.
type WalkResult struct {
	Vertices []string
	Edges    []graph.Edge // edges taken, in order; Weight is the graph weight
	Stop     WalkStop
}

// Text joins the visited words with single spaces.
func (w WalkResult) Text() string {
	return strings.Join(w.Vertices, " ")
}

// RandomWalk starts at a uniformly chosen source word and follows uniformly
// chosen outgoing edges until it reaches a dead end or draws an edge it has
// already traversed. Every edge is taken at most once, so the walk always
// terminates.
func RandomWalk(g *graph.Graph, rng *rand.Rand, opts WalkOptions) (WalkResult, error) {
	sources := g.Sources()
	if len(sources) == 0 {
		return WalkResult{}, graph.NewError("random_walk").Cause(graph.ErrEmptyGraph).Err()
	}
	return walk(g, sources[rng.IntN(len(sources))], rng, opts), nil
}

// RandomWalkFrom is RandomWalk with a fixed starting word.
func RandomWalkFrom(g *graph.Graph, start string, rng *rand.Rand, opts WalkOptions) (WalkResult, error) {
	if !g.HasVertex(start) {
		return WalkResult{}, graph.VertexNotFoundError("random_walk", start)
	}
	return walk(g, start, rng, opts), nil
}

func walk(g *graph.Graph, start string, rng *rand.Rand, opts WalkOptions) WalkResult {
	type edgeKey struct{ from, to string }
	visited := make(map[edgeKey]struct{})

	result := WalkResult{Vertices: []string{start}}
	current := start
	for {
		next := g.Successors(current)
		if len(next) == 0 {
			result.Stop = WalkDeadEnd
			return result
		}

		to := next[rng.IntN(len(next))]
		key := edgeKey{current, to}
		edge := graph.Edge{From: current, To: to, Weight: g.OutEdges(current)[to]}

		if _, seen := visited[key]; seen {
			if opts.IncludeRepeatedTarget {
				result.Vertices = append(result.Vertices, to)
				result.Edges = append(result.Edges, edge)
			}
			result.Stop = WalkRepeatedEdge
			return result
		}

		visited[key] = struct{}{}
		result.Vertices = append(result.Vertices, to)
		result.Edges = append(result.Edges, edge)
		current = to
	}
}
