// SPDX-License-Identifier: MIT

package mip

import "math"

// Solution is the outcome of a Solver run.
type Solution struct {
	// Status classifies the outcome; see the package documentation.
	Status Status

	// Objective is the objective value of the incumbent (NaN without one).
	Objective float64

	// Bound is the best proven bound on the objective (NaN when unknown).
	Bound float64

	// Nodes counts the relaxations the solver evaluated.
	Nodes int

	values []float64
}

// NewSolution wraps the result of an external solver. values is indexed by
// Var and may be nil when status carries no assignment.
func NewSolution(status Status, objective, bound float64, values []float64) *Solution {
	return &Solution{Status: status, Objective: objective, Bound: bound, values: values}
}

// Value returns the value of v in the incumbent, 0 without one.
func (s *Solution) Value(v Var) float64 {
	if v < 0 || int(v) >= len(s.values) {
		return 0
	}

	return s.values[v]
}

// Values returns a copy of the incumbent indexed by Var; nil without one.
func (s *Solution) Values() []float64 {
	if s.values == nil {
		return nil
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)

	return out
}

// HasSolution reports whether an assignment is available.
func (s *Solution) HasSolution() bool {
	return s.Status == Optimal || s.Status == Feasible
}

// Infeasible reports whether the problem was proven infeasible.
func (s *Solution) Infeasible() bool { return s.Status == Infeasible }

// Gap returns |Bound-Objective| / |Objective|; +Inf when either is unknown.
func (s *Solution) Gap() float64 {
	if !s.HasSolution() || math.IsNaN(s.Bound) {
		return math.Inf(1)
	}

	return relGap(s.Objective, s.Bound)
}

func relGap(incumbent, bound float64) float64 {
	return math.Abs(bound-incumbent) / math.Max(math.Abs(incumbent), 1e-10)
}
