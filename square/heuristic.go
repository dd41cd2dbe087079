// SPDX-License-Identifier: MIT

package square

import (
	"sort"
)

// greedy grows squares from single seed rows, or from the fixed nodes when
// there are any, and returns the largest admissible one as row and column
// indices. ok is false when no square of side ≥ 1 was found.
//
// From a seed the candidate columns are the common successors of the rows.
// The next row is the outside node keeping the most of them (lowest index on
// ties), as long as it keeps more than there are rows. Every intermediate
// state is a square candidate once truncated to min(rows, cols, bigM).
//
// Complexity: O(n · d²) per seed with d the largest degree, in practice far
// less since the column set shrinks at every step.
func (m *Model) greedy() (rows, cols []int, ok bool) {
	n := len(m.nodes)
	fwd := make([][]int, n)
	bwd := make([][]int, n)
	for i, node := range m.nodes {
		fwd[i] = m.adjacent(i, m.g.Forward(node))
		bwd[i] = m.adjacent(i, m.g.Backward(node))
	}

	var seeds [][]int
	if len(m.fixed) > 0 {
		seeds = [][]int{dedupe(m.fixed)}
	} else {
		for i := 0; i < n; i++ {
			seeds = append(seeds, []int{i})
		}
	}

	g := grower{m: m, fwd: fwd, bwd: bwd}
	for _, seed := range seeds {
		if len(fwd[seed[0]]) <= len(g.rows) {
			// Columns come from the seed's successors.
			continue
		}
		g.grow(seed)
		if len(g.rows) >= m.bigM {
			break
		}
	}

	return g.rows, g.cols, len(g.rows) > 0
}

// grower keeps the best square found so far across seeds.
type grower struct {
	m        *Model
	fwd, bwd [][]int

	rows, cols []int
}

func (g *grower) grow(seed []int) {
	inRows := make(map[int]bool, len(seed))
	rows := append([]int(nil), seed...)
	cols := g.fwd[seed[0]]
	for _, r := range seed {
		inRows[r] = true
		cols = intersect(cols, g.fwd[r])
	}
	cols = without(cols, inRows)
	g.offer(rows, cols, len(seed))

	for len(cols) > len(rows) {
		inCols := make(map[int]bool, len(cols))
		for _, c := range cols {
			inCols[c] = true
		}
		seen := make(map[int]bool)
		best, bestKeep := -1, len(rows)
		for _, c := range cols {
			for _, s := range g.bwd[c] {
				if seen[s] || inRows[s] || inCols[s] {
					continue
				}
				seen[s] = true
				keep := len(intersect(cols, g.fwd[s]))
				if keep > bestKeep || (keep == bestKeep && best >= 0 && s < best) {
					best, bestKeep = s, keep
				}
			}
		}
		if best < 0 {
			return
		}
		rows = append(rows, best)
		inRows[best] = true
		cols = intersect(cols, g.fwd[best])
		g.offer(rows, cols, len(seed))
	}
}

// offer truncates rows and cols to a common side and keeps the result when
// it beats the best square so far and the model admits it. Rows are
// truncated from the end, so seed rows always survive.
func (g *grower) offer(rows, cols []int, keep int) {
	k := min(len(rows), len(cols), g.m.bigM)
	if k < keep || k <= len(g.rows) {
		return
	}
	r := append([]int(nil), rows[:k]...)
	c := append([]int(nil), cols[:k]...)
	if !g.m.admissible(r, c) {
		return
	}
	sort.Ints(r)
	g.rows, g.cols = r, c
}

// admissible reports whether rows × cols uses each character once and
// reproduces no cutoff or its mirror.
func (m *Model) admissible(rows, cols []int) bool {
	seen := make(map[string]bool, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			ch, _ := m.g.Label(m.nodes[r], m.nodes[c])
			if seen[ch] {
				return false
			}
			seen[ch] = true
		}
	}

	inRows := make(map[int]bool, len(rows))
	inCols := make(map[int]bool, len(cols))
	for _, r := range rows {
		inRows[r] = true
	}
	for _, c := range cols {
		inCols[c] = true
	}
	for _, cut := range m.cuts {
		if subset(cut[0], inRows) && subset(cut[1], inCols) {
			return false
		}
		if subset(cut[0], inCols) && subset(cut[1], inRows) {
			return false
		}
	}

	return true
}

// startVector turns a square into a full assignment of the encoding.
func (m *Model) startVector(rows, cols []int) []float64 {
	start := make([]float64, m.p.NumVars())
	isRow := make([]bool, len(m.nodes))
	isCol := make([]bool, len(m.nodes))
	for _, r := range rows {
		isRow[r] = true
		start[m.x[r]] = 1
	}
	for _, c := range cols {
		isCol[c] = true
		start[m.y[c]] = 1
	}
	for a, z := range m.z {
		if isRow[m.g.NodeIndex(a.From)] && isCol[m.g.NodeIndex(a.To)] {
			start[z] = 1
		}
	}
	for k, ch := range m.g.Chars() {
		for _, a := range m.g.CharArcs(ch) {
			start[m.u[k]] += start[m.z[a]]
		}
	}
	start[m.v] = float64(len(rows))

	return start
}

// adjacent maps labels to sorted node indices, dropping self.
func (m *Model) adjacent(self int, labels []string) []int {
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		if j := m.g.NodeIndex(l); j != self {
			out = append(out, j)
		}
	}
	sort.Ints(out)

	return out
}

// intersect returns the common elements of two sorted slices.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

func without(a []int, drop map[int]bool) []int {
	out := a[:0:0]
	for _, x := range a {
		if !drop[x] {
			out = append(out, x)
		}
	}

	return out
}

func subset(a []int, set map[int]bool) bool {
	for _, x := range a {
		if !set[x] {
			return false
		}
	}

	return true
}

func dedupe(a []int) []int {
	seen := make(map[int]bool, len(a))
	out := make([]int, 0, len(a))
	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}

	return out
}
