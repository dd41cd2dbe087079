// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hanzisquare/internal/config"
	"github.com/katalvlaran/hanzisquare/mip"
	"github.com/katalvlaran/hanzisquare/report"
	"github.com/katalvlaran/hanzisquare/square"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Search for squares and print them as grids",
		Long: `Search for the largest square, then for as many further distinct squares
as --iterations asks for. Each round excludes the squares of earlier rounds
(and their row/column mirror). Grids are written to stdout in order.

Examples:
  # Largest square of the default table
  hanzisquare solve

  # Three squares, one minute each, with 木 as a row label
  hanzisquare solve --iterations 3 --time-limit 1m --fixed 木`,
		Args: cobra.NoArgs,
		RunE: a.runSolve,
	}
}

func (a *app) runSolve(cmd *cobra.Command, _ []string) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}

	results, err := square.Enumerate(cmd.Context(), g, a.cfg.Solve.Iterations, a.squareOptions()...)
	if errors.Is(err, mip.ErrTooLarge) {
		return fmt.Errorf("%w (raise --max-rows, or write the model with 'hanzisquare export' for an external solver)", err)
	}
	if err != nil {
		return err
	}
	for k, res := range results {
		a.log.Info("square",
			"round", k,
			"size", res.Size(),
			"status", res.Status.String(),
			"chars", len(square.ActiveChars(g, res.Solution)))
	}

	out := cmd.OutOrStdout()

	return report.WriteAll(out, g, results, report.WithColor(useColor(a.cfg.Output.Color, out)))
}

// useColor resolves the colour mode; "auto" colours terminals only.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return report.IsTerminal(w)
	}
}
