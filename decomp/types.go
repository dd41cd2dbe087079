// SPDX-License-Identifier: MIT

package decomp

import (
	"errors"
	"unicode"
)

// ErrEmptyPath is returned by Load when no table path is provided.
var ErrEmptyPath = errors.New("decomp: empty table path")

// Pair is an ordered two-component decomposition of a character.
type Pair [2]string

// Reverse returns the pair with its components swapped.
func (p Pair) Reverse() Pair { return Pair{p[1], p[0]} }

// Entry binds a character to its canonical decomposition.
type Entry struct {
	Char string
	Pair Pair
}

// Table is an ordered list of decomposition entries, one per character.
type Table []Entry

// Map returns a char → pair lookup of the table.
func (t Table) Map() map[string]Pair {
	m := make(map[string]Pair, len(t))
	for _, e := range t {
		m[e.Char] = e.Pair
	}

	return m
}

// Filter is a set of characters allowed into a Table.
// A nil Filter admits every character.
type Filter map[string]struct{}

// NewFilter builds a Filter from the runes of s, ignoring whitespace.
func NewFilter(s string) Filter {
	f := make(Filter)
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		f[string(r)] = struct{}{}
	}

	return f
}

// Allows reports whether char passes the filter.
func (f Filter) Allows(char string) bool {
	if f == nil {
		return true
	}
	_, ok := f[char]

	return ok
}
