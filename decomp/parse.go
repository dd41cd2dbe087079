// SPDX-License-Identifier: MIT

package decomp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single table line; real tables stay far below it.
const maxLineBytes = 1 << 20

// pairTokens is the only decomposition arity the table keeps.
const pairTokens = 2

// Parse reads a decomposition table from r.
//
// Contract:
//   - each line is split on TAB after trimming surrounding whitespace;
//   - field 0 is the character, the remaining fields are decompositions;
//   - a decomposition is kept only when it has exactly two whitespace
//     separated tokens; the first kept decomposition wins;
//   - characters without a kept decomposition, or rejected by f, are skipped;
//   - a character listed twice keeps its first position and its last pair.
//
// Only read errors are returned.
func Parse(r io.Reader, f Filter) (Table, error) {
	var (
		table = make(Table, 0, 1024)
		index = make(map[string]int)
		sc    = bufio.NewScanner(r)
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		e, ok := parseLine(sc.Text())
		if !ok || !f.Allows(e.Char) {
			continue
		}
		if at, seen := index[e.Char]; seen {
			table[at].Pair = e.Pair
			continue
		}
		index[e.Char] = len(table)
		table = append(table, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decomp: read table: %w", err)
	}

	return table, nil
}

// parseLine extracts the first two-component decomposition of a line.
func parseLine(line string) (Entry, bool) {
	fields := strings.Split(strings.TrimSpace(line), "\t")
	if len(fields) < 2 || fields[0] == "" {
		return Entry{}, false
	}
	for _, field := range fields[1:] {
		tokens := strings.Fields(field)
		if len(tokens) != pairTokens {
			continue
		}

		return Entry{Char: fields[0], Pair: Pair{tokens[0], tokens[1]}}, true
	}

	return Entry{}, false
}

// ParseFilter reads a character filter: the first line of r, one
// character per rune. An empty input yields an empty, non-nil Filter.
func ParseFilter(r io.Reader) (Filter, error) {
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("decomp: read filter: %w", err)
	}

	return NewFilter(line), nil
}

// Load reads the table at path, restricted by the filter at filterPath
// when filterPath is non-empty.
func Load(path, filterPath string) (Table, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var f Filter
	if filterPath != "" {
		ff, err := os.Open(filterPath)
		if err != nil {
			return nil, fmt.Errorf("decomp: open filter %q: %w", filterPath, err)
		}
		defer ff.Close()
		if f, err = ParseFilter(ff); err != nil {
			return nil, fmt.Errorf("%s: %w", filterPath, err)
		}
	}

	tf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decomp: open table %q: %w", path, err)
	}
	defer tf.Close()

	t, err := Parse(tf, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
