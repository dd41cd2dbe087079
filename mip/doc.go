// SPDX-License-Identifier: MIT

// Package mip is the boundary between model builders and mixed-integer
// programming solvers.
//
// A Problem is assembled variable by variable and constraint by constraint,
// much like the model APIs of commercial solvers:
//
//	p := mip.NewProblem("knapsack")
//	a, _ := p.AddBinary("a")
//	b, _ := p.AddBinary("b")
//	_ = p.AddConstraint("cap", mip.NewExpr().Add(a, 3).Add(b, 4), mip.LE, 5)
//	p.SetObjective(mip.NewExpr().Add(a, 2).Add(b, 3), mip.Maximize)
//
// Any type satisfying Solver can then run it. The package ships one backend,
// BranchAndBound, a best-first branch-and-bound over LP relaxations solved by
// gonum's simplex implementation. It is pure Go and intended for small and
// medium instances: relaxations above Params.MaxRows are refused with
// ErrTooLarge, and such instances are better exported with WriteLP and fed
// to an industrial solver. A known good assignment can be handed over as
// Params.Start.
//
// Status semantics:
//   - Optimal:    the search closed (or the relative gap dropped below Params.MIPGap).
//   - Feasible:   the time or node limit stopped the search with an incumbent.
//   - Infeasible: the search proved no assignment satisfies the constraints.
//   - NoSolution: the limit stopped the search before any incumbent was found.
//
// Reaching a limit is a status, not an error. Errors are reserved for
// malformed problems and parameters.
package mip
