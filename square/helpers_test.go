// SPDX-License-Identifier: MIT
package square_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/builder"
	"github.com/katalvlaran/hanzisquare/decomp"
	"github.com/katalvlaran/hanzisquare/graph"
)

// woodGrain is a small real table whose unique 2×2 square is
// rows {木, 禾} × cols {口, 日}; 女 only reaches 子 and 口.
var woodGrain = decomp.Table{
	{Char: "杏", Pair: decomp.Pair{"木", "口"}},
	{Char: "杳", Pair: decomp.Pair{"木", "日"}},
	{Char: "和", Pair: decomp.Pair{"禾", "口"}},
	{Char: "香", Pair: decomp.Pair{"禾", "日"}},
	{Char: "好", Pair: decomp.Pair{"女", "子"}},
	{Char: "如", Pair: decomp.Pair{"女", "口"}},
}

func woodGraph() *graph.Graph { return graph.Build(woodGrain) }

func plantedGraph(t *testing.T, k int) *graph.Graph {
	t.Helper()
	tab, err := builder.BuildTable(nil, builder.PlantedSquare(k))
	require.NoError(t, err)

	return graph.Build(tab)
}

func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	tab, err := builder.BuildTable(nil, builder.Path(n))
	require.NoError(t, err)

	return graph.Build(tab)
}
