// Package session implements the seven user-facing actions shared by the
// line menu and the terminal UI. Each action returns a Report of lines that
// the front-end prints or styles as it sees fit.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/algorithms"
	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/logging"
	"github.com/dd0wney/cluso-textgraph/pkg/query"
	"github.com/dd0wney/cluso-textgraph/pkg/visualization"
)

// LineKind tells a front-end how to present a line.
type LineKind int

const (
	Plain LineKind = iota
	Heading
	Success
	Failure
)

// Line is one line of action output.
type Line struct {
	Kind LineKind
	Text string
}

// Report is the output of one action.
type Report []Line

// String joins the report text with newlines.
func (r Report) String() string {
	lines := make([]string, len(r))
	for i, l := range r {
		lines[i] = l.Text
	}
	return strings.Join(lines, "\n")
}

// Failed reports whether any line is a failure.
func (r Report) Failed() bool {
	for _, l := range r {
		if l.Kind == Failure {
			return true
		}
	}
	return false
}

func line(kind LineKind, format string, args ...any) Line {
	return Line{Kind: kind, Text: fmt.Sprintf(format, args...)}
}

// Session binds an engine to a renderer and the walk output file.
type Session struct {
	engine   *query.Engine
	renderer *visualization.Renderer
	walkFile string
	logger   logging.Logger
}

// New creates a session. A nil logger discards.
func New(engine *query.Engine, renderer *visualization.Renderer, walkFile string, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Session{
		engine:   engine,
		renderer: renderer,
		walkFile: walkFile,
		logger:   logger.With(logging.Component("session")),
	}
}

// Engine returns the underlying engine.
func (s *Session) Engine() *query.Engine {
	return s.engine
}

// Display lists every edge, writes the DOT file and rasterizes it. Render
// failures are reported, never returned.
func (s *Session) Display(ctx context.Context) Report {
	g := s.engine.Graph()

	report := Report{line(Heading, "Directed graph (%d vertices, %d edges):", g.Stats().Vertices, g.Stats().Edges)}
	for _, l := range visualization.EdgeLines(g) {
		report = append(report, Line{Kind: Plain, Text: l})
	}

	if s.renderer == nil {
		return report
	}

	result, err := s.renderer.Render(ctx, g)
	var renderErr *visualization.RenderError
	switch {
	case errors.As(err, &renderErr):
		s.logger.Warn("render failed", logging.Error(err))
		report = append(report,
			line(Success, "DOT file written: %s", s.renderer.DotFile),
			line(Failure, "Failed to render image: %v", renderErr))
	case err != nil:
		s.logger.Warn("dot write failed", logging.Error(err))
		report = append(report, line(Failure, "Failed to write DOT file: %v", err))
	default:
		report = append(report,
			line(Success, "DOT file written: %s", result.DotFile),
			line(Success, "Graph image saved: %s", result.ImageFile))
	}
	return report
}

// Bridge answers a bridge-word query.
func (s *Session) Bridge(w1, w2 string) Report {
	result := s.engine.BridgeWords(w1, w2)
	kind := Success
	if result.Kind != algorithms.BridgeFound {
		kind = Failure
	}
	return Report{{Kind: kind, Text: result.String()}}
}

// NewText expands text with bridge words.
func (s *Session) NewText(text string) Report {
	result := s.engine.GenerateText(text)
	return Report{line(Success, "New text: %s", result.Text)}
}

// Path answers a shortest-path query. A blank w2 lists a shortest path to
// every word reachable from w1.
func (s *Session) Path(w1, w2 string) Report {
	if strings.TrimSpace(w2) != "" {
		result := s.engine.ShortestPath(w1, w2)
		kind := Success
		if !result.Found() {
			kind = Failure
		}
		return Report{{Kind: kind, Text: result.String()}}
	}

	word := strings.ToLower(strings.TrimSpace(w1))
	paths, err := s.engine.ShortestPathsFrom(word)
	if err != nil {
		return Report{line(Failure, "No %s in the graph!", word)}
	}
	if len(paths) == 0 {
		return Report{line(Failure, "No paths from %s!", word)}
	}

	report := Report{line(Heading, "Shortest paths from %s:", paths[0].From)}
	for _, p := range paths {
		report = append(report, Line{Kind: Plain, Text: p.String()})
	}
	return report
}

// PageRanks lists the score of every participating word in lexicographic
// order.
func (s *Session) PageRanks() Report {
	result, err := s.engine.PageRank()
	if err != nil {
		return Report{line(Failure, "PageRank failed: %v", err)}
	}

	report := Report{line(Heading, "PageRank (%d iterations):", result.Iterations)}
	for _, rw := range result.Ranked() {
		report = append(report, line(Plain, "%s: %.6f", rw.Word, rw.Score))
	}
	return report
}

// Walk performs a random walk and saves it to the walk file.
func (s *Session) Walk() Report {
	w, err := s.engine.RandomWalk()
	if errors.Is(err, graph.ErrEmptyGraph) {
		return Report{line(Failure, "The graph is empty, cannot walk.")}
	}
	if err != nil {
		return Report{line(Failure, "Random walk failed: %v", err)}
	}

	report := Report{line(Success, "Random walk: %s", w.Text())}
	if err := SaveWalk(s.walkFile, w); err != nil {
		s.logger.Warn("walk save failed", logging.Path(s.walkFile), logging.Error(err))
		return append(report, line(Failure, "Failed to save walk: %v", err))
	}
	return append(report, line(Success, "Walk saved to %s", s.walkFile))
}

// SaveWalk writes the walk's words, space separated, to path.
func SaveWalk(path string, w algorithms.WalkResult) error {
	if err := os.WriteFile(path, []byte(w.Text()), 0o644); err != nil {
		return fmt.Errorf("write walk: %w", err)
	}
	return nil
}
