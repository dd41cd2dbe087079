// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/hanzisquare/graph"
	"github.com/katalvlaran/hanzisquare/square"
)

// ErrMissingArc indicates a (row, column) cell without a character; the
// square does not belong to the graph it is printed against.
var ErrMissingArc = errors.New("report: missing arc")

// Option configures a writer.
type Option func(*options)

type options struct {
	color bool
}

// WithColor enables or disables ANSI highlighting of row and column labels.
func WithColor(on bool) Option { return func(o *options) { o.color = on } }

// IsTerminal reports whether w is a terminal, which is when colour is
// enabled under the "auto" mode.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type painter struct {
	row, col func(a ...any) string
}

func newPainter(o options) painter {
	if !o.color {
		plain := func(a ...any) string { return fmt.Sprint(a...) }
		return painter{row: plain, col: plain}
	}
	row := color.New(color.FgCyan, color.Bold)
	col := color.New(color.FgYellow, color.Bold)
	row.EnableColor()
	col.EnableColor()

	return painter{row: row.SprintFunc(), col: col.SprintFunc()}
}

// WriteGrid writes sol as a grid of characters of g. Nothing is written
// when a cell has no character; the error wraps ErrMissingArc.
func WriteGrid(w io.Writer, g *graph.Graph, sol square.Solution, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Resolve every cell first so a bad square leaves w untouched.
	cells := make([][]string, len(sol.Cols))
	for j, c := range sol.Cols {
		cells[j] = make([]string, len(sol.Rows))
		for i, r := range sol.Rows {
			ch, ok := g.Label(r, c)
			if !ok {
				return fmt.Errorf("cell (%s, %s): %w", r, c, ErrMissingArc)
			}
			cells[j][i] = ch
		}
	}

	p := newPainter(o)
	bw := bufio.NewWriter(w)
	bw.WriteString("\t")
	for _, r := range sol.Rows {
		bw.WriteString(p.row(r))
		bw.WriteString("\t")
	}
	bw.WriteString("\n")
	for j, c := range sol.Cols {
		bw.WriteString(p.col(c))
		bw.WriteString("\t")
		for _, ch := range cells[j] {
			bw.WriteString(ch)
			bw.WriteString("\t")
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

// WriteAll writes the grid of every result, separated by blank lines.
func WriteAll(w io.Writer, g *graph.Graph, results []square.Result, opts ...Option) error {
	for k, res := range results {
		if k > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := WriteGrid(w, g, res.Solution, opts...); err != nil {
			return fmt.Errorf("result %d: %w", k, err)
		}
	}

	return nil
}
