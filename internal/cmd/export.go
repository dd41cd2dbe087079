// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hanzisquare/mip"
	"github.com/katalvlaran/hanzisquare/square"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the square model in LP format without solving it",
		Long: `Build the model for the configured table, bound and fixed nodes and write
it in CPLEX LP format, for use with an external MIP solver.

Examples:
  hanzisquare export -o square.lp
  hanzisquare export --bound 10 --fixed 口 > square.lp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "LP file to write (- for stdout)")

	return cmd
}

func (a *app) runExport(cmd *cobra.Command, output string) error {
	g, err := a.loadGraph()
	if err != nil {
		return err
	}
	m, err := square.New(g, a.squareOptions()...)
	if err != nil {
		return err
	}
	p, err := m.Problem()
	if err != nil {
		return err
	}

	if output == "-" || output == "" {
		return mip.WriteLP(cmd.OutOrStdout(), p)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = writeAndClose(f, p); err != nil {
		return fmt.Errorf("export %s: %w", output, err)
	}
	a.log.Info("model exported", "path", output, "vars", p.NumVars(), "constraints", p.NumConstraints())

	return nil
}

func writeAndClose(f io.WriteCloser, p *mip.Problem) error {
	if err := mip.WriteLP(f, p); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
