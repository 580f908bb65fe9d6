package visualization

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dd0wney/cluso-textgraph/pkg/config"
	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/logging"
	"github.com/dd0wney/cluso-textgraph/pkg/metrics"
)

// RenderError is a failed rasterizer run. Output holds the command's
// combined stdout and stderr.
type RenderError struct {
	Command  string
	ExitCode int // -1 when the command never ran or was killed
	Output   string
	Err      error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("%s failed", e.Command)
	if e.ExitCode >= 0 {
		msg = fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	if e.Err != nil && e.ExitCode < 0 {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer writes the DOT file and runs the layout command on it.
type Renderer struct {
	DotFile   string
	ImageFile string
	Command   string
	Format    string
	Timeout   time.Duration

	logger  logging.Logger
	metrics *metrics.Registry
}

// NewRenderer builds a Renderer from the render section of the config.
func NewRenderer(cfg config.RenderConfig, logger logging.Logger, reg *metrics.Registry) *Renderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Renderer{
		DotFile:   cfg.DotFile,
		ImageFile: cfg.ImageFile,
		Command:   cfg.Command,
		Format:    cfg.Format,
		Timeout:   cfg.Timeout,
		logger:    logger.With(logging.Component("render")),
		metrics:   reg,
	}
}

// RenderResult describes a completed render.
type RenderResult struct {
	DotFile   string
	ImageFile string
	Output    string
	Duration  time.Duration
}

// Render writes g to DotFile then rasterizes it into ImageFile. A DOT
// write failure is returned as is; a rasterizer failure is a *RenderError.
func (r *Renderer) Render(ctx context.Context, g *graph.Graph) (*RenderResult, error) {
	if err := SaveDOT(r.DotFile, g); err != nil {
		r.logger.Warn("dot write failed", logging.Path(r.DotFile), logging.Error(err))
		return nil, err
	}

	timer := logging.StartTimer(r.logger, "rasterize", logging.Path(r.DotFile), logging.Duration("timeout", r.Timeout))
	output, err := r.rasterize(ctx)
	elapsed := timer.Elapsed()

	if r.metrics != nil {
		r.metrics.RecordRender(err == nil, elapsed)
	}
	if err != nil {
		timer.EndError(err)
		return nil, err
	}
	timer.End(logging.String("image", r.ImageFile))

	return &RenderResult{
		DotFile:   r.DotFile,
		ImageFile: r.ImageFile,
		Output:    output,
		Duration:  elapsed,
	}, nil
}

// rasterize runs `<command> -T<format> <dot> -o <image>` with the
// configured timeout.
func (r *Renderer) rasterize(ctx context.Context) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Command, "-T"+r.Format, r.DotFile, "-o", r.ImageFile)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), nil
	}

	renderErr := &RenderError{Command: r.Command, ExitCode: -1, Output: string(out), Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		renderErr.ExitCode = exitErr.ExitCode()
	} else if ctx.Err() != nil {
		renderErr.Err = fmt.Errorf("%w: %w", err, ctx.Err())
	}
	return string(out), renderErr
}
