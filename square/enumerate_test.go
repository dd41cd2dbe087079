// SPDX-License-Identifier: MIT
package square_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/mip"
	"github.com/katalvlaran/hanzisquare/square"
)

func canonical(s square.Solution) string {
	a, b := append([]string(nil), s.Rows...), append([]string(nil), s.Cols...)
	sort.Strings(a)
	sort.Strings(b)
	x, y := strings.Join(a, ","), strings.Join(b, ",")
	if x > y {
		x, y = y, x
	}

	return x + "|" + y
}

func TestEnumerate_DistinctRounds(t *testing.T) {
	g := woodGraph()
	results, err := square.Enumerate(context.Background(), g, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, 2, results[0].Size())
	seen := make(map[string]bool)
	for i, r := range results {
		require.Equal(t, mip.Optimal, r.Status, "round %d", i)
		require.NoError(t, square.Verify(g, r.Solution), "round %d", i)
		key := canonical(r.Solution)
		require.False(t, seen[key], "round %d repeats %s", i, key)
		seen[key] = true
	}
	require.Equal(t, 1, results[1].Size())
	require.Equal(t, 1, results[2].Size())
}

func TestEnumerate_StopsWhenExhausted(t *testing.T) {
	g := pathGraph(t, 2)
	results, err := square.Enumerate(context.Background(), g, 5)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 1, results[0].Size())
	require.True(t, results[1].Empty())
}

func TestEnumerate_StopsOnInfeasible(t *testing.T) {
	g := pathGraph(t, 2)
	results, err := square.Enumerate(context.Background(), g, 5, square.WithFixedNodes("N0"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []string{"N0"}, results[0].Rows)
	require.Equal(t, mip.Infeasible, results[1].Status)
}

func TestEnumerate_ZeroIterations(t *testing.T) {
	results, err := square.Enumerate(context.Background(), woodGraph(), 0)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestEnumerate_OptionErrors(t *testing.T) {
	_, err := square.Enumerate(context.Background(), woodGraph(), 1, square.WithFixedNodes("火"))
	require.ErrorIs(t, err, square.ErrUnknownNode)
}
