// SPDX-License-Identifier: MIT

// Package cmd implements the hanzisquare command line.
package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hanzisquare/decomp"
	"github.com/katalvlaran/hanzisquare/graph"
	"github.com/katalvlaran/hanzisquare/internal/config"
	"github.com/katalvlaran/hanzisquare/internal/logging"
	"github.com/katalvlaran/hanzisquare/square"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// NewRootCmd builds the command tree with a fresh viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	defaults := config.Default()

	root := &cobra.Command{
		Use:   "hanzisquare",
		Short: "Find the largest square of Chinese characters sharing components",
		Long: `hanzisquare reads a table of two-part character decompositions and
searches for two disjoint lists of components, rows and columns, such that
every (row, column) pair composes a character. The search is a mixed-integer
program; the largest square is printed as a tab-separated grid.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	pf.String("input", defaults.Input.Path, "decomposition table (char<TAB>decomposition...)")
	pf.String("filter", defaults.Input.Filter, "file whose first line lists the characters to keep")
	pf.Bool("clear-nodes", defaults.Graph.ClearNodes, "drop characters that are themselves components")
	pf.Int("iterations", defaults.Solve.Iterations, "number of distinct squares to enumerate")
	pf.Duration("time-limit", defaults.Solve.TimeLimit, "solver time limit per round (0 = none)")
	pf.Float64("gap", defaults.Solve.MIPGap, "relative MIP gap")
	pf.Int("bound", defaults.Solve.Bound, "big-M constant and maximum side length (0 = node count)")
	pf.StringSlice("fixed", defaults.Solve.FixedNodes, "components that must be row labels")
	pf.String("problem-file", defaults.Solve.ProblemFile, "write the LP model here before solving")
	pf.Int("max-rows", defaults.Solve.MaxRows, "largest relaxation the built-in solver attempts (0 = no cap)")
	pf.String("color", defaults.Output.Color, "colour grid labels: auto, always or never")
	pf.String("log-level", defaults.Logging.Level, "log level: debug, info, warn or error")
	pf.String("log-format", defaults.Logging.Format, "log format: text or json")

	for key, flag := range map[string]string{
		"input.path":         "input",
		"input.filter":       "filter",
		"graph.clear_nodes":  "clear-nodes",
		"solve.iterations":   "iterations",
		"solve.time_limit":   "time-limit",
		"solve.mip_gap":      "gap",
		"solve.bound":        "bound",
		"solve.fixed_nodes":  "fixed",
		"solve.problem_file": "problem-file",
		"solve.max_rows":     "max-rows",
		"output.color":       "color",
		"logging.level":      "log-level",
		"logging.format":     "log-format",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(newSolveCmd(a), newExportCmd(a))

	return root
}

// Execute runs the root command under ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	config.SetDefaults(a.v)
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	return nil
}

// loadGraph reads the configured table and builds its graph.
func (a *app) loadGraph() (*graph.Graph, error) {
	start := time.Now()
	t, err := decomp.Load(a.cfg.Input.Path, a.cfg.Input.Filter)
	if err != nil {
		return nil, err
	}
	g := graph.Build(t, graph.WithClearNodes(a.cfg.Graph.ClearNodes))
	a.log.Info("graph built",
		"path", a.cfg.Input.Path,
		"entries", len(t),
		"nodes", g.NodeCount(),
		"arcs", g.ArcCount(),
		"chars", len(g.Chars()),
		"elapsed", time.Since(start))

	return g, nil
}

// squareOptions maps the solve configuration onto model options.
func (a *app) squareOptions() []square.Option {
	s := a.cfg.Solve

	return []square.Option{
		square.WithTimeLimit(s.TimeLimit),
		square.WithMIPGap(s.MIPGap),
		square.WithBound(s.Bound),
		square.WithFixedNodes(s.FixedNodes...),
		square.WithProblemFile(s.ProblemFile),
		square.WithMaxRows(s.MaxRows),
		square.WithLogger(a.log),
	}
}
