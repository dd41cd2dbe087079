// SPDX-License-Identifier: MIT

// Package decomp reads character decomposition tables.
//
// A table line has the shape
//
//	char<TAB>decomposition1<TAB>decomposition2...
//
// where every decomposition is a space separated list of component tokens.
// Only decompositions made of exactly two components are kept, and only the
// first of them per character. Lines that do not yield such a decomposition
// are dropped without error: the table is treated as pre-validated data and
// malformed input is filtered, not reported.
//
// An optional filter restricts the characters that are loaded. A filter file
// holds a single line of characters without separators (for example the
// 3500 most common characters).
//
// The order of a Table is the order of the input. Downstream consumers rely
// on it: when two characters share the same ordered component pair, the
// first one loaded labels the pair.
package decomp
