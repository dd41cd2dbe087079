// SPDX-License-Identifier: MIT
package builder_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/builder"
	"github.com/katalvlaran/hanzisquare/decomp"
)

func TestPlantedSquare_Layout(t *testing.T) {
	tab, err := builder.BuildTable(nil, builder.PlantedSquare(2))
	require.NoError(t, err)

	want := decomp.Table{
		{Char: "字(R0+C0)", Pair: decomp.Pair{"R0", "C0"}},
		{Char: "字(R0+C1)", Pair: decomp.Pair{"R0", "C1"}},
		{Char: "字(R1+C0)", Pair: decomp.Pair{"R1", "C0"}},
		{Char: "字(R1+C1)", Pair: decomp.Pair{"R1", "C1"}},
	}
	if diff := cmp.Diff(want, tab); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestPlantedSquare_Options(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithPrefixes("r", "c", ""),
		builder.WithCharScheme(func(a, b string) string { return a + b }),
	}
	tab, err := builder.BuildTable(opts, builder.PlantedSquare(3))
	require.NoError(t, err)
	require.Len(t, tab, 9)
	require.Equal(t, "r2c1", tab[7].Char)
	require.Equal(t, []string{"r0", "r1", "r2"}, builder.PlantedRows(3, opts...))
	require.Equal(t, []string{"c0", "c1", "c2"}, builder.PlantedCols(3, opts...))
}

func TestPlantedSquare_TooSmall(t *testing.T) {
	_, err := builder.BuildTable(nil, builder.PlantedSquare(0))
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestPath(t *testing.T) {
	tab, err := builder.BuildTable(nil, builder.Path(4))
	require.NoError(t, err)
	require.Len(t, tab, 3)
	require.Equal(t, decomp.Pair{"N2", "N3"}, tab[2].Pair)

	_, err = builder.BuildTable(nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestRandomNoise_Deterministic(t *testing.T) {
	build := func() decomp.Table {
		tab, err := builder.BuildTable(
			[]builder.BuilderOption{builder.WithSeed(42)},
			builder.PlantedSquare(2),
			builder.RandomNoise(6, 5),
		)
		require.NoError(t, err)
		return tab
	}
	a, b := build(), build()
	require.Len(t, a, 10)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different tables:\n%s", diff)
	}
	for _, e := range a[4:] {
		require.NotEqual(t, e.Pair[0], e.Pair[1], "self pair %v", e)
	}
}

func TestRandomNoise_CapsAtDistinctPairs(t *testing.T) {
	tab, err := builder.BuildTable([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomNoise(100, 3))
	require.NoError(t, err)
	require.Len(t, tab, 3)
}

func TestRandomNoise_Errors(t *testing.T) {
	_, err := builder.BuildTable(nil, builder.RandomNoise(3, 4))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildTable([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomNoise(3, 1))
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestBuildTable_DuplicateChar(t *testing.T) {
	same := builder.WithCharScheme(func(a, b string) string { return "同" })
	_, err := builder.BuildTable([]builder.BuilderOption{same}, builder.PlantedSquare(2))
	require.True(t, errors.Is(err, builder.ErrDuplicateChar))
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithCharScheme(nil) })
}
