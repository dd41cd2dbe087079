// SPDX-License-Identifier: MIT

package square

import (
	"fmt"

	"github.com/katalvlaran/hanzisquare/graph"
)

// Verify checks that sol is a square of g: equal lengths, no component on
// both sides, and an arc for every (row, column) cell.
func Verify(g *graph.Graph, sol Solution) error {
	if len(sol.Rows) != len(sol.Cols) {
		return fmt.Errorf("%d rows, %d cols: %w", len(sol.Rows), len(sol.Cols), ErrNotSquare)
	}
	rows := make(map[string]bool, len(sol.Rows))
	for _, r := range sol.Rows {
		rows[r] = true
	}
	for _, c := range sol.Cols {
		if rows[c] {
			return fmt.Errorf("%q: %w", c, ErrOverlap)
		}
	}
	for _, r := range sol.Rows {
		for _, c := range sol.Cols {
			if !g.HasArc(r, c) {
				return fmt.Errorf("(%s, %s): %w", r, c, ErrMissingCell)
			}
		}
	}

	return nil
}

// ActiveChars returns the characters written in the cells of sol, row by
// row, each once. Cells without an arc are skipped.
func ActiveChars(g *graph.Graph, sol Solution) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(sol.Rows)*len(sol.Cols))
	for _, r := range sol.Rows {
		for _, c := range sol.Cols {
			ch, ok := g.Label(r, c)
			if !ok || seen[ch] {
				continue
			}
			seen[ch] = true
			out = append(out, ch)
		}
	}

	return out
}
