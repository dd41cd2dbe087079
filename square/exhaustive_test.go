// SPDX-License-Identifier: MIT
package square_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/decomp"
	"github.com/katalvlaran/hanzisquare/graph"
	"github.com/katalvlaran/hanzisquare/mip"
	"github.com/katalvlaran/hanzisquare/square"
)

// randomTable draws a table over at most seven components. Pairs may repeat,
// a component may pair with itself and a character may own several pairs.
func randomTable(rng *rand.Rand) decomp.Table {
	nodes := 2 + rng.Intn(6)
	entries := 1 + rng.Intn(12)
	tab := make(decomp.Table, 0, entries)
	for i := 0; i < entries; i++ {
		a := fmt.Sprintf("n%d", rng.Intn(nodes))
		b := fmt.Sprintf("n%d", rng.Intn(nodes))
		ch := fmt.Sprintf("c%d", i)
		if i > 0 && rng.Intn(5) == 0 {
			ch = fmt.Sprintf("c%d", rng.Intn(i))
		}
		tab = append(tab, decomp.Entry{Char: ch, Pair: decomp.Pair{a, b}})
	}

	return tab
}

// largestSquare tries every split of the components into rows, columns and
// unused, and returns the largest side whose cells are all arcs with
// pairwise distinct characters.
func largestSquare(g *graph.Graph) int {
	nodes := g.Nodes()
	combos := 1
	for range nodes {
		combos *= 3
	}

	best := 0
	for code := 0; code < combos; code++ {
		var sol square.Solution
		for i, c := 0, code; i < len(nodes); i, c = i+1, c/3 {
			switch c % 3 {
			case 1:
				sol.Rows = append(sol.Rows, nodes[i])
			case 2:
				sol.Cols = append(sol.Cols, nodes[i])
			}
		}
		k := len(sol.Rows)
		if k <= best || k != len(sol.Cols) {
			continue
		}
		if square.Verify(g, sol) != nil || len(square.ActiveChars(g, sol)) != k*k {
			continue
		}
		best = k
	}

	return best
}

func TestSolve_MatchesExhaustiveSearch(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 60; n++ {
		tab := randomTable(rng)
		g := graph.Build(tab)
		want := largestSquare(g)

		m, err := square.New(g, square.WithTimeLimit(30*time.Second))
		require.NoError(t, err)
		res, err := m.Solve(context.Background())
		require.NoError(t, err, "table %d: %v", n, tab)
		require.Equal(t, mip.Optimal, res.Status, "table %d: %v", n, tab)
		require.Equal(t, want, res.Size(), "table %d: %v", n, tab)
		require.NoError(t, square.Verify(g, res.Solution), "table %d", n)
		require.Len(t, square.ActiveChars(g, res.Solution), want*want, "table %d", n)
	}
}
