// Package graph holds the word adjacency graph: vertices are distinct words
// and the weight of edge (u,v) counts how often v directly follows u in the
// source text.
package graph

import (
	"sort"
)

// Edge is a weighted directed edge.
type Edge struct {
	From   string
	To     string
	Weight int
}

// Statistics summarizes a built graph.
type Statistics struct {
	Vertices    int // sources and targets
	Sources     int // vertices with at least one outgoing edge
	Edges       int // distinct (from, to) pairs
	TotalWeight int // sum of all weights, i.e. adjacent token pairs
	Tokens      int // tokens the graph was built from
}

// Graph is a weighted directed graph keyed by word. Once built it is only
// read; nothing in this module mutates a Graph handed to a query.
type Graph struct {
	adjacency map[string]map[string]int
	// targets holds every word that appears as an edge target
	targets     map[string]struct{}
	edgeCount   int
	totalWeight int
	tokens      int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]int),
		targets:   make(map[string]struct{}),
	}
}

// AddEdge increments the weight of (from, to), creating it with weight 1.
func (g *Graph) AddEdge(from, to string) {
	out, ok := g.adjacency[from]
	if !ok {
		out = make(map[string]int)
		g.adjacency[from] = out
	}
	if _, exists := out[to]; !exists {
		g.edgeCount++
	}
	out[to]++
	g.totalWeight++
	g.targets[to] = struct{}{}
}

// OutEdges returns the outgoing mapping of word. A word without outgoing
// edges yields an empty map. The returned map must not be modified.
func (g *Graph) OutEdges(word string) map[string]int {
	if out, ok := g.adjacency[word]; ok {
		return out
	}
	return map[string]int{}
}

// Weight returns the weight of (from, to) and whether the edge exists.
func (g *Graph) Weight(from, to string) (int, bool) {
	w, ok := g.adjacency[from][to]
	return w, ok
}

// HasEdge reports whether (from, to) is an edge.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.adjacency[from][to]
	return ok
}

// HasVertex reports whether word is a source or a target of any edge.
func (g *Graph) HasVertex(word string) bool {
	if _, ok := g.adjacency[word]; ok {
		return true
	}
	_, ok := g.targets[word]
	return ok
}

// HasSource reports whether word has at least one outgoing edge.
func (g *Graph) HasSource(word string) bool {
	_, ok := g.adjacency[word]
	return ok
}

// OutDegree returns the number of distinct targets of word.
func (g *Graph) OutDegree(word string) int {
	return len(g.adjacency[word])
}

// Vertices returns every vertex in lexicographic order.
func (g *Graph) Vertices() []string {
	seen := make(map[string]struct{}, len(g.adjacency)+len(g.targets))
	for w := range g.adjacency {
		seen[w] = struct{}{}
	}
	for w := range g.targets {
		seen[w] = struct{}{}
	}
	return sortedKeys(seen)
}

// Sources returns the vertices that have outgoing edges, sorted.
func (g *Graph) Sources() []string {
	out := make([]string, 0, len(g.adjacency))
	for w := range g.adjacency {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Successors returns the targets of word in lexicographic order.
func (g *Graph) Successors(word string) []string {
	out := make([]string, 0, len(g.adjacency[word]))
	for w := range g.adjacency[word] {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Edges returns every edge ordered by From, then To.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for _, from := range g.Sources() {
		for _, to := range g.Successors(from) {
			edges = append(edges, Edge{From: from, To: to, Weight: g.adjacency[from][to]})
		}
	}
	return edges
}

// IsEmpty reports whether the graph has no edges.
func (g *Graph) IsEmpty() bool {
	return len(g.adjacency) == 0
}

// Stats returns size counters for the graph.
func (g *Graph) Stats() Statistics {
	return Statistics{
		Vertices:    len(g.Vertices()),
		Sources:     len(g.adjacency),
		Edges:       g.edgeCount,
		TotalWeight: g.totalWeight,
		Tokens:      g.tokens,
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
