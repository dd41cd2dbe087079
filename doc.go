// Package hanzisquare finds squares of Chinese characters: two disjoint
// lists of components, rows and columns, such that every (row, column) pair
// composes a character of a decomposition table.
//
// 🚀 What is in the box?
//
//	decomp/   - decomposition table reader (TSV) and character filters
//	graph/    - the decomposition graph: components as nodes, characters as arc labels
//	mip/      - a small MIP modelling layer, LP export and a pure-Go branch-and-bound solver
//	square/   - the square model, enumeration of distinct squares, verification
//	report/   - tab-separated grid output with optional terminal colours
//	builder/  - synthetic tables with a known optimum for tests and benchmarks
//
// The command in cmd/hanzisquare wires these together:
//
//	hanzisquare solve --input chaizi/chaizi-jt.txt --iterations 3 --time-limit 10m
//	hanzisquare export --bound 12 -o square.lp
//
// Quick start:
//
//	t, _ := decomp.Load("chaizi/chaizi-jt.txt", "")
//	g := graph.Build(t)
//	m, _ := square.New(g, square.WithBound(15), square.WithTimeLimit(time.Hour))
//	res, _ := m.Solve(ctx)
//	_ = report.WriteGrid(os.Stdout, g, res.Solution)
package hanzisquare
