// Package cli wires the grafo command tree: the interactive session on the
// root command plus the non-interactive path and generate commands.
package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/internal/config"
	"github.com/katalvlaran/grafo/internal/console"
	"github.com/katalvlaran/grafo/internal/logging"
)

// app carries the state shared by every command of one invocation.
type app struct {
	cfgPath      string
	logLevel     string
	maxVertices  int
	format       string
	strict       bool
	stopOnTarget bool

	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand builds a fresh command tree. Each call returns independent
// state, so tests can execute several trees side by side.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "grafo",
		Short: "Build an undirected graph and find the fewest-hop path between two vertices",
		Long: `grafo builds an undirected graph over vertices 1..N and answers shortest-path
queries with breadth-first search.

Run without a subcommand for the interactive session: it asks for the vertex
count, the edges and the two endpoints on stdin. The path and generate
commands answer the same query from flags.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: a.runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.IntVar(&a.maxVertices, "max-vertices", core.DefaultMaxVertices, "largest accepted vertex count")
	pf.StringVar(&a.format, "format", config.FormatText, "output format: text, json or mermaid")
	pf.BoolVar(&a.strict, "strict", false, "abort on the first out-of-range edge instead of skipping it")
	pf.BoolVar(&a.stopOnTarget, "stop-on-target", false, "stop the search once the end vertex is discovered")

	root.AddCommand(newPathCommand(a), newGenerateCommand(a))
	return root
}

// Execute runs the command tree with os args and standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup reads the configuration, lets explicitly set flags override it,
// validates the merged result, and builds the session logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("max-vertices") {
		cfg.MaxVertices = a.maxVertices
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("strict") {
		cfg.StrictEdges = a.strict
	}
	if flags.Changed("stop-on-target") {
		cfg.StopOnTarget = a.stopOnTarget
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.With(
		zap.String("session_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgPath),
		zap.Int("max_vertices", cfg.MaxVertices),
		zap.String("format", cfg.Format),
		zap.Bool("strict_edges", cfg.StrictEdges),
		zap.Bool("stop_on_target", cfg.StopOnTarget))
	return nil
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	s := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
		MaxVertices:  a.cfg.MaxVertices,
		StrictEdges:  a.cfg.StrictEdges,
		StopOnTarget: a.cfg.StopOnTarget,
		Format:       a.cfg.Format,
	}, a.log)
	return s.Run(cmd.Context())
}
