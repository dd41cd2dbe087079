package decomp_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/decomp"
)

const sample = "好\t女 子\n" +
	"如\t女 口\t口 女\n" +
	"品\t口 口 口\t口 吅\n" +
	"一\n" +
	"\n" +
	"林\t木 木\n" +
	"森\t木 木 木\n"

func TestParseKeepsFirstTwoComponentDecomposition(t *testing.T) {
	table, err := decomp.Parse(strings.NewReader(sample), nil)
	require.NoError(t, err)

	want := decomp.Table{
		{Char: "好", Pair: decomp.Pair{"女", "子"}},
		{Char: "如", Pair: decomp.Pair{"女", "口"}},
		{Char: "品", Pair: decomp.Pair{"口", "吅"}},
		{Char: "林", Pair: decomp.Pair{"木", "木"}},
	}
	if diff := cmp.Diff(want, table); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAppliesFilter(t *testing.T) {
	table, err := decomp.Parse(strings.NewReader(sample), decomp.NewFilter("好林 森"))
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, "好", table[0].Char)
	require.Equal(t, "林", table[1].Char)
}

func TestParseEmptyFilterRejectsEverything(t *testing.T) {
	table, err := decomp.Parse(strings.NewReader(sample), decomp.NewFilter(""))
	require.NoError(t, err)
	require.Empty(t, table)
}

func TestParseDuplicateKeepsPositionTakesLastPair(t *testing.T) {
	in := "好\t女 子\n如\t女 口\n好\t子 女\n"
	table, err := decomp.Parse(strings.NewReader(in), nil)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, decomp.Entry{Char: "好", Pair: decomp.Pair{"子", "女"}}, table[0])
}

func TestParseToleratesCRLF(t *testing.T) {
	table, err := decomp.Parse(strings.NewReader("好\t女 子\r\n如\t女 口\r\n"), nil)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, decomp.Pair{"女", "口"}, table[1].Pair)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseReportsReadErrors(t *testing.T) {
	_, err := decomp.Parse(failingReader{}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}

func TestParseFilterFirstLineOnly(t *testing.T) {
	f, err := decomp.ParseFilter(strings.NewReader("好如\n林\n"))
	require.NoError(t, err)
	require.True(t, f.Allows("好"))
	require.True(t, f.Allows("如"))
	require.False(t, f.Allows("林"))
}

func TestNilFilterAllowsAll(t *testing.T) {
	var f decomp.Filter
	require.True(t, f.Allows("任"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	tablePath := filepath.Join(dir, "chaizi.txt")
	filterPath := filepath.Join(dir, "filter.txt")
	require.NoError(t, os.WriteFile(tablePath, []byte(sample), 0o644))
	require.NoError(t, os.WriteFile(filterPath, []byte("如品\n"), 0o644))

	all, err := decomp.Load(tablePath, "")
	require.NoError(t, err)
	require.Len(t, all, 4)

	filtered, err := decomp.Load(tablePath, filterPath)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	require.Equal(t, decomp.Pair{"女", "口"}, filtered.Map()["如"])

	_, err = decomp.Load("", "")
	require.ErrorIs(t, err, decomp.ErrEmptyPath)

	_, err = decomp.Load(filepath.Join(dir, "missing.txt"), "")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPairReverse(t *testing.T) {
	require.Equal(t, decomp.Pair{"子", "女"}, decomp.Pair{"女", "子"}.Reverse())
}
