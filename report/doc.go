// SPDX-License-Identifier: MIT

// Package report renders squares as tab-separated grids.
//
// The first line lists the row labels after a leading tab; each following
// line starts with a column label and holds, for every row label, the
// character composed by (row, column). Every field, including the last, is
// followed by a tab:
//
//	\t木\t禾\t
//	口\t杏\t和\t
//	日\t杳\t香\t
//
// Labels can be highlighted with ANSI colours for terminals (WithColor).
package report
