// SPDX-License-Identifier: MIT

// Package square searches for the largest character square of a
// decomposition graph.
//
// A square of size v is two disjoint lists of components, rows and columns,
// each of length v, such that every (row, column) pair is an arc of the graph:
// every cell of the v×v grid then reads as a real character.
//
// The search is a mixed-integer program handed to a mip.Solver:
//
//	x_i ∈ {0,1}     component i is a row label
//	y_j ∈ {0,1}     component j is a column label
//	z_ij ∈ {0,1}    per arc (i,j): x_i ∧ y_j
//	u_c ∈ {0,1}     per character: Σ z over its arcs (bookkeeping)
//	v ∈ ℤ, 0≤v≤M   the side length
//
//	maximize v
//	Σ x = v, Σ y = v
//	z_ij ≥ x_i + y_j − 1, z_ij ≤ x_i, z_ij ≤ y_j
//	x_i + y_i ≤ 1
//	v − M(1−x_i) ≤ Σ_j z_ij ≤ v + M(1−x_i)     (rows see v columns)
//	v − M(1−y_j) ≤ Σ_i z_ij ≤ v + M(1−y_j)     (columns see v rows)
//	u_c = Σ_{(i,j)∈arcs(c)} z_ij
//	x_i = 1 for fixed nodes
//	Σ_{X} x + Σ_{Y} y ≤ |X|+|Y|−1 and the mirrored cut, per prior solution
//
// The big-M constant M is the Bound option (default: the node count). With
// x_i = 0 the lower big-M row reads 0 ≥ v − M, so M also caps v: a bound below
// the true optimum silently hides larger squares, a loose one slows the
// relaxation down.
//
// Enumerate repeats the search, each round cutting off all earlier squares
// and their row/column mirrors, to list distinct maximal squares.
package square
