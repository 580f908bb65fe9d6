package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-textgraph/pkg/config"
	"github.com/dd0wney/cluso-textgraph/pkg/graph"
	"github.com/dd0wney/cluso-textgraph/pkg/graphql"
	"github.com/dd0wney/cluso-textgraph/pkg/health"
	"github.com/dd0wney/cluso-textgraph/pkg/logging"
	"github.com/dd0wney/cluso-textgraph/pkg/menu"
	"github.com/dd0wney/cluso-textgraph/pkg/metrics"
	"github.com/dd0wney/cluso-textgraph/pkg/query"
	"github.com/dd0wney/cluso-textgraph/pkg/session"
	"github.com/dd0wney/cluso-textgraph/pkg/tui"
	"github.com/dd0wney/cluso-textgraph/pkg/visualization"
)

var (
	errUsage       = errors.New("expected exactly one input file")
	errQueryFailed = errors.New("query returned errors")
)

type rootOptions struct {
	configPath         string
	seed               int64
	logLevel           string
	metricsAddr        string
	useTUI             bool
	query              string
	normalizedPageRank bool
	sourcesOnly        bool
}

// newRootCmd wires the command to the given streams so tests can drive it.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "textgraph [flags] <file>",
		Short: "Build a word graph from a text file and explore it",
		Long: `textgraph reads a text file, builds a directed graph of adjacent words
weighted by how often each pair occurs, and offers bridge-word queries,
bridge-word text generation, shortest paths, PageRank and random walks.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Usage()
				return errUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], in, out, errOut)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve /metrics, /graphql and /healthz on host:port")
	flags.BoolVar(&opts.useTUI, "tui", false, "use the full-screen terminal UI")
	flags.StringVar(&opts.query, "query", "", "run one GraphQL query, print the JSON result and exit")
	flags.BoolVar(&opts.normalizedPageRank, "normalized-pagerank", false, "use (1-d)/N teleport and redistribute dangling rank")
	flags.BoolVar(&opts.sourcesOnly, "sources-only", false, "only words with outgoing edges count as in the graph")

	return cmd
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if opts.normalizedPageRank {
		cfg.PageRank.Normalized = true
	}
	if opts.sourcesOnly {
		cfg.Membership = config.MembershipSources
		cfg.PageRank.Participation = config.ParticipationSources
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions, path string, in io.Reader, out, errOut io.Writer) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return err
	}

	level := logging.ParseLevel(cfg.Log.LevelName(os.Getenv(logging.EnvLogLevel)))
	logger := logging.NewJSONLogger(errOut, level).With(logging.Session(uuid.NewString()))
	logging.SetDefaultLogger(logger)

	reg := metrics.NewRegistry()

	timer := logging.StartTimer(logger, "build graph", logging.Path(path))
	g, err := graph.BuildFromFile(path)
	if err != nil {
		timer.EndError(err)
		fmt.Fprintf(errOut, "Error reading file: %v\n", err)
		return err
	}
	stats := g.Stats()
	reg.RecordGraph(stats.Vertices, stats.Edges, stats.Tokens, timer.EndInfo(
		logging.Int("vertices", stats.Vertices),
		logging.Int("edges", stats.Edges),
		logging.Int("tokens", stats.Tokens),
	))

	engine := query.NewEngine(g, query.OptionsFromConfig(cfg),
		query.WithLogger(logger),
		query.WithMetrics(reg),
	)

	schema, err := graphql.GenerateSchema(engine)
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		srv, err := reg.Listen(cfg.Metrics.Addr)
		if err != nil {
			fmt.Fprintf(errOut, "Error starting metrics server: %v\n", err)
			return err
		}
		srv.Handle("/graphql", graphql.NewGraphQLHandler(schema))

		checker := health.NewChecker()
		checker.Register("graph", health.GraphCheck(g))
		checker.Register("renderer", health.RendererCheck(cfg.Render.Command))
		checker.Register("memory", health.MemoryCheck())
		srv.Handle("/healthz", checker.HTTPHandler())
		logger.Info("metrics server listening", logging.String("addr", srv.Addr()))

		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := srv.Serve(ctx); err != nil {
				logger.Warn("metrics server stopped", logging.Error(err))
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	if opts.query != "" {
		result, hasErrors, err := graphql.ExecuteJSON(ctx, opts.query, schema)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(result))
		if hasErrors {
			return errQueryFailed
		}
		return nil
	}

	renderer := visualization.NewRenderer(cfg.Render, logger, reg)
	sess := session.New(engine, renderer, cfg.Walk.OutputFile, logger)

	if opts.useTUI {
		return tui.Run(ctx, sess)
	}

	styles := menu.PlainStyles()
	if f, ok := out.(*os.File); ok {
		styles = menu.StylesFor(f)
	}
	return menu.New(sess, in, out, styles).Run(ctx)
}
