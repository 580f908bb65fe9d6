package algorithms

import (
	"container/heap"
	"fmt"
	"math"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// PathReason explains a PathResult.
type PathReason int

const (
	PathFound PathReason = iota
	PathMissingWord
	PathUnreachable
)

// PathResult is the answer to a single-pair shortest-path query.
type PathResult struct {
	From   string
	To     string
	Reason PathReason
	Path   []string // From ... To, empty unless Reason == PathFound
	Length int      // sum of edge weights along Path
}

// Found reports whether a path exists.
func (r PathResult) Found() bool {
	return r.Reason == PathFound
}

// String renders the result in its user-facing form.
func (r PathResult) String() string {
	switch r.Reason {
	case PathMissingWord:
		return fmt.Sprintf("No path: %s or %s not in graph!", r.From, r.To)
	case PathUnreachable:
		return fmt.Sprintf("No path from %s to %s!", r.From, r.To)
	default:
		return fmt.Sprintf("Shortest path: %s (length: %d)", strings.Join(r.Path, " → "), r.Length)
	}
}

const infinity = math.MaxInt

// ShortestPath finds a minimum-weight path from -> to with Dijkstra's
// algorithm. Ties resolve to the first path settled; successors are
// relaxed in lexicographic order so the choice is deterministic.
func ShortestPath(g *graph.Graph, from, to string, policy MembershipPolicy) PathResult {
	result := PathResult{From: from, To: to}
	if !policy.Contains(g, from) || !policy.Contains(g, to) {
		result.Reason = PathMissingWord
		return result
	}
	if from == to {
		result.Path = []string{from}
		return result
	}

	dist, prev := dijkstra(g, from, to)
	if dist[to] == infinity {
		result.Reason = PathUnreachable
		return result
	}

	result.Path = reconstructPath(prev, from, to)
	result.Length = dist[to]
	return result
}

// ShortestPathsFrom returns one shortest path from source to every other
// vertex it can reach, ordered by target word.
func ShortestPathsFrom(g *graph.Graph, source string, policy MembershipPolicy) ([]PathResult, error) {
	if !policy.Contains(g, source) {
		return nil, graph.VertexNotFoundError("shortest_paths", source)
	}

	dist, prev := dijkstra(g, source, "")

	var results []PathResult
	for _, v := range g.Vertices() {
		if v == source || dist[v] == infinity {
			continue
		}
		results = append(results, PathResult{
			From:   source,
			To:     v,
			Path:   reconstructPath(prev, source, v),
			Length: dist[v],
		})
	}
	return results, nil
}

// dijkstra runs from source and stops early once target is settled (an
// empty target explores everything reachable). Every vertex starts at
// infinity, including words that only appear as edge targets.
func dijkstra(g *graph.Graph, source, target string) (map[string]int, map[string]string) {
	vertices := g.Vertices()
	dist := make(map[string]int, len(vertices))
	for _, v := range vertices {
		dist[v] = infinity
	}
	prev := make(map[string]string)
	settled := make(map[string]bool, len(vertices))

	dist[source] = 0
	pq := &distanceQueue{{word: source, dist: 0}}

	for pq.Len() > 0 {
		current := heap.Pop(pq).(queueItem)
		if settled[current.word] || current.dist > dist[current.word] {
			continue
		}
		settled[current.word] = true
		if current.word == target {
			break
		}

		out := g.OutEdges(current.word)
		for _, next := range g.Successors(current.word) {
			alt := current.dist + out[next]
			if alt < dist[next] {
				dist[next] = alt
				prev[next] = current.word
				heap.Push(pq, queueItem{word: next, dist: alt})
			}
		}
	}

	return dist, prev
}

func reconstructPath(prev map[string]string, source, target string) []string {
	path := []string{target}
	for node := target; node != source; {
		node = prev[node]
		path = append(path, node)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// queueItem is a tentative distance. Stale entries are skipped on pop
// rather than decreased in place.
type queueItem struct {
	word string
	dist int
}

// distanceQueue is a min-heap ordered by distance, then word.
type distanceQueue []queueItem

func (q distanceQueue) Len() int { return len(q) }
func (q distanceQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].word < q[j].word
}
func (q distanceQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *distanceQueue) Push(x any) {
	*q = append(*q, x.(queueItem))
}

func (q *distanceQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
