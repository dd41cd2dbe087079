// SPDX-License-Identifier: MIT

// Package graph builds the decomposition graph used by the square search.
//
// Nodes are components (radicals or sub-characters). Arcs are ordered
// component pairs, each labelled by the character that decomposes into that
// pair. Arcs are registered in both directions so that a character can appear
// either as row·column or column·row in a square.
//
// Duplicate pairs: when two characters decompose into the same ordered pair,
// the first one in table order labels the arc. This is a known approximation
// kept on purpose: supporting several labels per arc would not change which
// squares exist, only how a cell may be rendered.
//
// Example:
//
//	t, _ := decomp.Load("chaizi-jt.txt", "")
//	g := graph.Build(t, graph.WithClearNodes(false))
//	c, ok := g.Label("女", "子") // "好", true
package graph
