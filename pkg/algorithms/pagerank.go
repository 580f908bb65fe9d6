package algorithms

import (
	"container/heap"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/dd0wney/cluso-textgraph/pkg/graph"
)

// Participation selects which vertices receive a PageRank score.
type Participation int

const (
	// ParticipateAllVertices ranks sources and pure sinks alike.
	ParticipateAllVertices Participation = iota
	// ParticipateSourcesOnly ranks only words with outgoing edges.
	ParticipateSourcesOnly
)

// ParseParticipation maps "sources" to ParticipateSourcesOnly and anything
// else to ParticipateAllVertices.
func ParseParticipation(s string) Participation {
	if s == "sources" {
		return ParticipateSourcesOnly
	}
	return ParticipateAllVertices
}

// PageRankOptions configures PageRank algorithm
type PageRankOptions struct {
	DampingFactor float64 // Usually 0.85
	MaxIterations int
	Tolerance     float64 // Stop early once no score moves more than this; 0 runs every iteration
	Participation Participation

	// Normalized uses (1-d)/N for the teleport term and spreads the rank of
	// dangling vertices evenly, so scores sum to 1. When false the
	// teleport term is a flat (1-d) and dangling rank is dropped.
	Normalized bool
}

// DefaultPageRankOptions returns default PageRank configuration
func DefaultPageRankOptions() PageRankOptions {
	return PageRankOptions{
		DampingFactor: 0.85,
		MaxIterations: 100,
		Participation: ParticipateAllVertices,
	}
}

var ErrInvalidPageRankOptions = errors.New("invalid pagerank options")

// Validate checks the damping factor and iteration count.
func (o PageRankOptions) Validate() error {
	if o.DampingFactor <= 0 || o.DampingFactor >= 1 {
		return fmt.Errorf("%w: damping factor %v outside (0, 1)", ErrInvalidPageRankOptions, o.DampingFactor)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidPageRankOptions, o.MaxIterations)
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance", ErrInvalidPageRankOptions)
	}
	return nil
}

// PageRankResult contains PageRank scores for all participating words
type PageRankResult struct {
	Scores     map[string]float64
	Iterations int
	Converged  bool
}

// RankedWord represents a word with its rank
type RankedWord struct {
	Word  string
	Score float64
}

// Score returns the rank of word, or 0 when it did not participate.
func (r *PageRankResult) Score(word string) float64 {
	return r.Scores[word]
}

// Ranked returns every score in lexicographic word order.
func (r *PageRankResult) Ranked() []RankedWord {
	words := make([]string, 0, len(r.Scores))
	for w := range r.Scores {
		words = append(words, w)
	}
	sort.Strings(words)

	ranked := make([]RankedWord, len(words))
	for i, w := range words {
		ranked[i] = RankedWord{Word: w, Score: r.Scores[w]}
	}
	return ranked
}

// PageRank computes PageRank scores for the participating vertices of g.
//
// Each round computes
//
//	PR'(v) = (1-d) + d * sum(PR(u) / outdeg(u))   for u -> v, u participating
//
// from the previous round's scores, starting at 1/N. outdeg counts every
// distinct successor of u, participating or not. Vertices are visited in
// sorted order so results are reproducible.
func PageRank(g *graph.Graph, opts PageRankOptions) (*PageRankResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var words []string
	if opts.Participation == ParticipateSourcesOnly {
		words = g.Sources()
	} else {
		words = g.Vertices()
	}

	if len(words) == 0 {
		return &PageRankResult{
			Scores:    make(map[string]float64),
			Converged: true,
		}, nil
	}

	n := float64(len(words))
	index := make(map[string]int, len(words))
	for i, w := range words {
		index[w] = i
	}

	// incoming[v] lists participating predecessors of v.
	incoming := make([][]int, len(words))
	outDegree := make([]int, len(words))
	for i, u := range words {
		outDegree[i] = g.OutDegree(u)
		for _, v := range g.Successors(u) {
			if j, ok := index[v]; ok {
				incoming[j] = append(incoming[j], i)
			}
		}
	}

	scores := make([]float64, len(words))
	for i := range scores {
		scores[i] = 1.0 / n
	}
	newScores := make([]float64, len(words))

	teleport := 1.0 - opts.DampingFactor
	if opts.Normalized {
		teleport /= n
	}

	converged := false
	iterations := 0

	for iterations < opts.MaxIterations {
		iterations++

		dangling := 0.0
		if opts.Normalized {
			for i, score := range scores {
				if outDegree[i] == 0 {
					dangling += score
				}
			}
			dangling = opts.DampingFactor * dangling / n
		}

		for v := range words {
			sum := 0.0
			for _, u := range incoming[v] {
				sum += scores[u] / float64(outDegree[u])
			}
			newScores[v] = teleport + opts.DampingFactor*sum + dangling
		}

		maxDiff := 0.0
		for i := range scores {
			if diff := math.Abs(newScores[i] - scores[i]); diff > maxDiff {
				maxDiff = diff
			}
		}

		scores, newScores = newScores, scores

		if opts.Tolerance > 0 && maxDiff < opts.Tolerance {
			converged = true
			break
		}
	}

	result := &PageRankResult{
		Scores:     make(map[string]float64, len(words)),
		Iterations: iterations,
		Converged:  converged,
	}
	for i, w := range words {
		result.Scores[w] = scores[i]
	}
	return result, nil
}

// rankedWordHeap is a min-heap by score; ties put the later word on top
// so it is evicted first.
type rankedWordHeap []RankedWord

func (h rankedWordHeap) Len() int { return len(h) }
func (h rankedWordHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Word > h[j].Word
}
func (h rankedWordHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedWordHeap) Push(x any) {
	*h = append(*h, x.(RankedWord))
}

func (h *rankedWordHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// Top returns the n highest-ranked words, best first, ties broken by word.
// Time complexity: O(m log n) for m scores.
func (r *PageRankResult) Top(n int) []RankedWord {
	if n <= 0 {
		return nil
	}

	h := make(rankedWordHeap, 0, n)
	for _, rw := range r.Ranked() {
		if h.Len() < n {
			heap.Push(&h, rw)
		} else if rankedBefore(rw, h[0]) {
			heap.Pop(&h)
			heap.Push(&h, rw)
		}
	}

	top := make([]RankedWord, h.Len())
	for i := len(top) - 1; i >= 0; i-- {
		top[i] = heap.Pop(&h).(RankedWord)
	}
	return top
}

func rankedBefore(a, b RankedWord) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Word < b.Word
}
