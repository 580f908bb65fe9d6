package algorithms

import (
	"sort"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// Component is one strongly connected component: every word in it can reach
// every other. Words are sorted.
type Component struct {
	ID    int
	Words []string
}

// SCCResult holds the result of Tarjan's strongly connected components algorithm.
type SCCResult struct {
	Components     []Component    // largest first, ties by first word
	ComponentOf    map[string]int // word -> Component.ID
	SingletonCount int
}

// Largest returns the biggest component, or nil for an empty graph.
func (r *SCCResult) Largest() *Component {
	if len(r.Components) == 0 {
		return nil
	}
	return &r.Components[0]
}

// CondensationEdge is an edge of the DAG formed by contracting each
// component to a single node. Weight sums the word-pair weights.
type CondensationEdge struct {
	From   int
	To     int
	Weight int
}

// tarjanState holds per-word state during Tarjan's DFS.
type tarjanState struct {
	index   int
	lowlink int
	onStack bool
}

// StronglyConnectedComponents finds all SCCs using Tarjan's algorithm in
// O(V+E) time. A random walk can only revisit words inside one component.
func StronglyConnectedComponents(g *graph.Graph) *SCCResult {
	words := g.Vertices()

	state := make(map[string]*tarjanState, len(words))
	var stack []string
	indexCounter := 0
	var groups [][]string

	var strongconnect func(u string)
	strongconnect = func(u string) {
		state[u] = &tarjanState{
			index:   indexCounter,
			lowlink: indexCounter,
			onStack: true,
		}
		indexCounter++
		stack = append(stack, u)

		for _, v := range g.Successors(u) {
			if _, seen := state[v]; !seen {
				strongconnect(v)
				if state[v].lowlink < state[u].lowlink {
					state[u].lowlink = state[v].lowlink
				}
			} else if state[v].onStack {
				if state[v].index < state[u].lowlink {
					state[u].lowlink = state[v].index
				}
			}
		}

		// u is a root: pop its component
		if state[u].lowlink == state[u].index {
			var members []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				state[w].onStack = false
				members = append(members, w)
				if w == u {
					break
				}
			}
			sort.Strings(members)
			groups = append(groups, members)
		}
	}

	for _, w := range words {
		if _, seen := state[w]; !seen {
			strongconnect(w)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i][0] < groups[j][0]
	})

	result := &SCCResult{
		Components:  make([]Component, len(groups)),
		ComponentOf: make(map[string]int, len(words)),
	}
	for id, members := range groups {
		result.Components[id] = Component{ID: id, Words: members}
		for _, w := range members {
			result.ComponentOf[w] = id
		}
		if len(members) == 1 {
			result.SingletonCount++
		}
	}
	return result
}

// Condensation builds the condensation DAG, sorted by (From, To).
func Condensation(g *graph.Graph, scc *SCCResult) []CondensationEdge {
	type edgeKey struct{ from, to int }
	weights := make(map[edgeKey]int)

	for _, e := range g.Edges() {
		from, to := scc.ComponentOf[e.From], scc.ComponentOf[e.To]
		if from == to {
			continue
		}
		weights[edgeKey{from, to}] += e.Weight
	}

	result := make([]CondensationEdge, 0, len(weights))
	for key, w := range weights {
		result = append(result, CondensationEdge{From: key.from, To: key.to, Weight: w})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].From != result[j].From {
			return result[i].From < result[j].From
		}
		return result[i].To < result[j].To
	})
	return result
}
