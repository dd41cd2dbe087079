// SPDX-License-Identifier: MIT

package mip

import "context"

// Solver runs a Problem to completion or to the limits in Params.
//
// Implementations must honour ctx cancellation as a limit: the best
// incumbent found so far is returned with status Feasible (or NoSolution),
// never as an error.
type Solver interface {
	Solve(ctx context.Context, p *Problem, prm Params) (*Solution, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, p *Problem, prm Params) (*Solution, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, p *Problem, prm Params) (*Solution, error) {
	return f(ctx, p, prm)
}
