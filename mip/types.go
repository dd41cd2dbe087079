// SPDX-License-Identifier: MIT

package mip

import (
	"errors"
	"time"
)

// Sentinel errors for problem construction and solving.
var (
	// ErrEmptyName indicates a variable or constraint without a name.
	ErrEmptyName = errors.New("mip: empty name")

	// ErrDuplicateName indicates a name already used by another variable or constraint.
	ErrDuplicateName = errors.New("mip: duplicate name")

	// ErrUnknownVar indicates an expression referencing a variable of another problem.
	ErrUnknownVar = errors.New("mip: unknown variable")

	// ErrBadBounds indicates lb > ub, a NaN bound, or an infinite lower bound.
	ErrBadBounds = errors.New("mip: bad variable bounds")

	// ErrBadParams indicates a negative time limit, gap or tolerance.
	ErrBadParams = errors.New("mip: bad solver parameters")

	// ErrUnbounded indicates the relaxation has no finite optimum.
	ErrUnbounded = errors.New("mip: problem is unbounded")

	// ErrTooLarge indicates a relaxation above Params.MaxRows and no start
	// to fall back on. Export such problems with WriteLP instead.
	ErrTooLarge = errors.New("mip: problem too large for the built-in solver")
)

// Kind is the domain of a variable.
type Kind int

const (
	// Continuous variables take any value within their bounds.
	Continuous Kind = iota
	// Binary variables take 0 or 1.
	Binary
	// Integer variables take integral values within their bounds.
	Integer
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	}

	return "unknown"
}

// Sense is the relation of a linear constraint.
type Sense int

const (
	// LE is expr <= rhs.
	LE Sense = iota
	// GE is expr >= rhs.
	GE
	// EQ is expr == rhs.
	EQ
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	}

	return "?"
}

// Direction is the optimisation sense of the objective.
type Direction int

const (
	// Minimize the objective.
	Minimize Direction = iota
	// Maximize the objective.
	Maximize
)

func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Status is the outcome of a solve.
type Status int

const (
	// NoSolution means a limit stopped the search before any incumbent was found.
	NoSolution Status = iota
	// Optimal means the incumbent is proven optimal within the MIP gap.
	Optimal
	// Feasible means a limit stopped the search with an unproven incumbent.
	Feasible
	// Infeasible means no assignment satisfies the constraints.
	Infeasible
)

func (s Status) String() string {
	switch s {
	case NoSolution:
		return "no-solution"
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	}

	return "unknown"
}

// Params bounds a solve.
//   - TimeLimit: wall-clock budget; 0 means no limit. The caller's context
//     deadline, if earlier, also applies.
//   - MIPGap: relative gap |bound-incumbent|/|incumbent| at which the search
//     stops and reports Optimal.
//   - IntTol: distance from an integer below which a value counts as integral.
//   - NodeLimit: maximum number of LP relaxations; 0 means no limit.
//   - MaxRows: largest relaxation, in simplex rows, the solver attempts;
//     0 means no limit.
//   - Start: optional assignment indexed by Var. It becomes the first
//     incumbent when it satisfies the problem and is ignored otherwise.
type Params struct {
	TimeLimit time.Duration
	MIPGap    float64
	IntTol    float64
	NodeLimit int
	MaxRows   int
	Start     []float64
}

// DefaultMaxRows is the relaxation size cap set by DefaultParams.
const DefaultMaxRows = 2000

// DefaultParams returns no time limit, a 1e-4 gap, a 1e-6 integrality
// tolerance and DefaultMaxRows.
func DefaultParams() Params {
	return Params{
		MIPGap:  1e-4,
		IntTol:  1e-6,
		MaxRows: DefaultMaxRows,
	}
}

func (p Params) validate() error {
	if p.TimeLimit < 0 || p.MIPGap < 0 || p.IntTol < 0 || p.NodeLimit < 0 || p.MaxRows < 0 {
		return ErrBadParams
	}

	return nil
}
