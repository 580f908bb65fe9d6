// Package query runs word-graph analyses on behalf of the front-ends.
//
// An Engine owns the graph, the session's single random source, and the
// logger and metrics every operation reports to. The graph never changes
// after construction; the mutex only serializes use of the random source
// and the cached PageRank result.
package query

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/dd0wney/cluso-textgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-textgraph/pkg/config"
	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/logging"
	"github.com/dd0wney/cluso-textgraph/pkg/metrics"
)

// Operation names used in logs and metric labels.
const (
	OpBridge     = "bridge_words"
	OpGenerate   = "generate_text"
	OpPath       = "shortest_path"
	OpPathsFrom  = "shortest_paths_from"
	OpPageRank   = "pagerank"
	OpPageRankOf = "pagerank_of"
	OpWalk       = "random_walk"
	OpComponents = "components"
)

// Options controls how the engine answers queries.
type Options struct {
	Membership algorithms.MembershipPolicy
	PageRank   algorithms.PageRankOptions
	Walk       algorithms.WalkOptions
	Seed       int64 // 0 seeds from the clock
}

// DefaultOptions returns all-vertex membership and default PageRank.
func DefaultOptions() Options {
	return Options{
		Membership: algorithms.MembershipAllVertices,
		PageRank:   algorithms.DefaultPageRankOptions(),
	}
}

// OptionsFromConfig translates a validated config.
func OptionsFromConfig(cfg *config.Config) Options {
	pr := algorithms.DefaultPageRankOptions()
	pr.DampingFactor = cfg.PageRank.DampingFactor
	pr.MaxIterations = cfg.PageRank.Iterations
	pr.Participation = algorithms.ParseParticipation(cfg.PageRank.Participation)
	pr.Normalized = cfg.PageRank.Normalized

	return Options{
		Membership: algorithms.ParseMembershipPolicy(cfg.Membership),
		PageRank:   pr,
		Walk:       algorithms.WalkOptions{IncludeRepeatedTarget: cfg.Walk.IncludeRepeatedTarget},
		Seed:       cfg.Seed,
	}
}

// Engine answers queries against one immutable graph.
type Engine struct {
	graph   *graph.Graph
	opts    Options
	logger  logging.Logger
	metrics *metrics.Registry

	mu       sync.Mutex
	rng      *rand.Rand
	pagerank *algorithms.PageRankResult
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics records every query into r.
func WithMetrics(r *metrics.Registry) EngineOption {
	return func(e *Engine) {
		e.metrics = r
	}
}

// NewEngine creates an engine over g.
func NewEngine(g *graph.Graph, opts Options, options ...EngineOption) *Engine {
	seed := uint64(opts.Seed)
	if opts.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Engine{
		graph:  g,
		opts:   opts,
		logger: logging.NewNopLogger(),
		rng:    rand.New(rand.NewPCG(seed, seed)),
	}
	for _, opt := range options {
		opt(e)
	}
	e.logger = e.logger.With(logging.Component("query"))
	return e
}

// Graph returns the underlying graph.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// BridgeWords answers a bridge-word query.
func (e *Engine) BridgeWords(w1, w2 string) algorithms.BridgeResult {
	w1, w2 = normalizeWord(w1), normalizeWord(w2)
	start := time.Now()

	result := algorithms.BridgeWords(e.graph, w1, w2, e.opts.Membership)

	status := metrics.StatusOK
	switch result.Kind {
	case algorithms.BridgeMissingWord:
		status = metrics.StatusNotFound
	case algorithms.BridgeNone:
		status = metrics.StatusEmpty
	default:
		e.observe(func(r *metrics.Registry) { r.RecordBridgeWords(len(result.Words)) })
	}
	e.finish(OpBridge, status, start,
		logging.Word("from", w1), logging.Word("to", w2), logging.Count(len(result.Words)))
	return result
}

// GenerateText expands text with bridge words.
func (e *Engine) GenerateText(text string) algorithms.GenerateResult {
	start := time.Now()

	e.mu.Lock()
	result := algorithms.GenerateText(e.graph, text, e.rng, e.opts.Membership)
	e.mu.Unlock()

	status := metrics.StatusOK
	if result.Text == "" {
		status = metrics.StatusEmpty
	}
	e.finish(OpGenerate, status, start, logging.Count(len(result.Insertions)))
	return result
}

// ShortestPath answers a single-pair shortest-path query.
func (e *Engine) ShortestPath(w1, w2 string) algorithms.PathResult {
	w1, w2 = normalizeWord(w1), normalizeWord(w2)
	start := time.Now()

	result := algorithms.ShortestPath(e.graph, w1, w2, e.opts.Membership)

	status := metrics.StatusOK
	switch result.Reason {
	case algorithms.PathMissingWord:
		status = metrics.StatusNotFound
	case algorithms.PathUnreachable:
		status = metrics.StatusEmpty
	default:
		e.observe(func(r *metrics.Registry) { r.RecordPath(result.Length) })
	}
	e.finish(OpPath, status, start,
		logging.Word("from", w1), logging.Word("to", w2),
		logging.Strings("path", result.Path), logging.Int("length", result.Length))
	return result
}

// ShortestPathsFrom returns a shortest path from w1 to every reachable word.
func (e *Engine) ShortestPathsFrom(w1 string) ([]algorithms.PathResult, error) {
	w1 = normalizeWord(w1)
	start := time.Now()

	paths, err := algorithms.ShortestPathsFrom(e.graph, w1, e.opts.Membership)
	if err != nil {
		e.fail(OpPathsFrom, start, err, logging.Word("from", w1))
		return nil, err
	}

	status := metrics.StatusOK
	if len(paths) == 0 {
		status = metrics.StatusEmpty
	}
	e.finish(OpPathsFrom, status, start, logging.Word("from", w1), logging.Count(len(paths)))
	return paths, nil
}

// PageRank computes, or returns the cached, scores for every participating
// word. The graph is immutable so one computation serves the session.
func (e *Engine) PageRank() (*algorithms.PageRankResult, error) {
	start := time.Now()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pagerank != nil {
		e.finish(OpPageRank, metrics.StatusOK, start, logging.Bool("cached", true))
		return e.pagerank, nil
	}

	result, err := algorithms.PageRank(e.graph, e.opts.PageRank)
	if err != nil {
		e.fail(OpPageRank, start, err)
		return nil, err
	}
	e.pagerank = result

	e.finish(OpPageRank, metrics.StatusOK, start,
		logging.Count(len(result.Scores)), logging.Int("iterations", result.Iterations))
	return result, nil
}

// Components returns the strongly connected components of the graph.
func (e *Engine) Components() *algorithms.SCCResult {
	start := time.Now()
	result := algorithms.StronglyConnectedComponents(e.graph)
	e.finish(OpComponents, metrics.StatusOK, start,
		logging.Count(len(result.Components)), logging.Int("singletons", result.SingletonCount))
	return result
}

// PageRankOf returns the score of a single word. Words outside the
// participating set, including words not in the graph, score 0.
func (e *Engine) PageRankOf(word string) (float64, error) {
	word = normalizeWord(word)

	result, err := e.PageRank()
	if err != nil {
		return 0, err
	}

	start := time.Now()
	score := result.Score(word)
	e.finish(OpPageRankOf, metrics.StatusOK, start, logging.Word("word", word), logging.Float64("score", score))
	return score, nil
}

// RandomWalk walks from a random source word.
func (e *Engine) RandomWalk() (algorithms.WalkResult, error) {
	start := time.Now()

	e.mu.Lock()
	result, err := algorithms.RandomWalk(e.graph, e.rng, e.opts.Walk)
	e.mu.Unlock()

	return e.walkDone(result, err, start)
}

// RandomWalkFrom walks from word.
func (e *Engine) RandomWalkFrom(word string) (algorithms.WalkResult, error) {
	word = normalizeWord(word)
	start := time.Now()

	e.mu.Lock()
	result, err := algorithms.RandomWalkFrom(e.graph, word, e.rng, e.opts.Walk)
	e.mu.Unlock()

	return e.walkDone(result, err, start, logging.Word("start", word))
}

func (e *Engine) walkDone(result algorithms.WalkResult, err error, start time.Time, fields ...logging.Field) (algorithms.WalkResult, error) {
	if err != nil {
		e.fail(OpWalk, start, err, fields...)
		return result, err
	}

	e.observe(func(r *metrics.Registry) { r.RecordWalk(len(result.Vertices)) })
	fields = append(fields, logging.Count(len(result.Vertices)), logging.String("stop", result.Stop.String()))
	e.finish(OpWalk, metrics.StatusOK, start, fields...)
	return result, nil
}

func (e *Engine) finish(op, status string, start time.Time, fields ...logging.Field) {
	elapsed := time.Since(start)
	e.observe(func(r *metrics.Registry) { r.RecordQuery(op, status, elapsed) })

	fields = append(fields, logging.Operation(op), logging.String("status", status), logging.Latency(elapsed))
	e.logger.Debug("query complete", fields...)
}

func (e *Engine) fail(op string, start time.Time, err error, fields ...logging.Field) {
	elapsed := time.Since(start)
	status := metrics.StatusError
	switch {
	case graph.IsNotFound(err):
		status = metrics.StatusNotFound
	case errors.Is(err, graph.ErrEmptyGraph):
		status = metrics.StatusEmpty
	}
	e.observe(func(r *metrics.Registry) { r.RecordQuery(op, status, elapsed) })

	fields = append(fields, logging.Operation(op), logging.String("status", status), logging.Latency(elapsed), logging.Error(err))
	e.logger.Info("query failed", fields...)
}

func (e *Engine) observe(record func(*metrics.Registry)) {
	if e.metrics != nil {
		record(e.metrics)
	}
}

// normalizeWord lowercases and trims a user-typed word.
func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
