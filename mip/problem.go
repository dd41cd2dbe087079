// SPDX-License-Identifier: MIT

package mip

import (
	"fmt"
	"math"
	"sort"
)

// Var identifies a variable of one Problem. It is the variable's position in
// creation order.
type Var int

// Term is one coefficient·variable product of an expression.
type Term struct {
	Var  Var
	Coef float64
}

// Expr is a linear expression Σ coef·var + constant. The zero value is the
// empty expression; methods mutate and return the receiver for chaining.
type Expr struct {
	Terms    []Term
	Constant float64
}

// NewExpr returns an empty expression.
func NewExpr() *Expr { return &Expr{} }

// Sum returns the expression Σ vars with unit coefficients.
func Sum(vars ...Var) *Expr {
	e := &Expr{Terms: make([]Term, 0, len(vars))}
	for _, v := range vars {
		e.Terms = append(e.Terms, Term{Var: v, Coef: 1})
	}

	return e
}

// Add appends coef·v.
func (e *Expr) Add(v Var, coef float64) *Expr {
	e.Terms = append(e.Terms, Term{Var: v, Coef: coef})

	return e
}

// AddExpr appends every term of o scaled by k, constant included.
func (e *Expr) AddExpr(o *Expr, k float64) *Expr {
	for _, t := range o.Terms {
		e.Terms = append(e.Terms, Term{Var: t.Var, Coef: k * t.Coef})
	}
	e.Constant += k * o.Constant

	return e
}

// AddConst adds c to the constant part.
func (e *Expr) AddConst(c float64) *Expr {
	e.Constant += c

	return e
}

// Eval returns the value of e under values indexed by Var.
func (e *Expr) Eval(values []float64) float64 {
	s := e.Constant
	for _, t := range e.Terms {
		s += t.Coef * values[t.Var]
	}

	return s
}

// normalized merges duplicate variables, drops zero coefficients and sorts
// terms by variable.
func (e *Expr) normalized() []Term {
	acc := make(map[Var]float64, len(e.Terms))
	for _, t := range e.Terms {
		acc[t.Var] += t.Coef
	}
	out := make([]Term, 0, len(acc))
	for v, c := range acc {
		if c != 0 {
			out = append(out, Term{Var: v, Coef: c})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Var < out[j].Var })

	return out
}

type variable struct {
	name   string
	kind   Kind
	lb, ub float64
}

// Constraint is a named linear constraint Σ terms (sense) RHS. Constants of
// the source expression are folded into RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Problem is a mixed-integer linear program under construction.
// A Problem is not safe for concurrent mutation.
type Problem struct {
	name  string
	vars  []variable
	cons  []Constraint
	names map[string]struct{}

	objective []Term
	objConst  float64
	direction Direction
}

// NewProblem returns an empty problem. The name is informational.
func NewProblem(name string) *Problem {
	return &Problem{name: name, names: make(map[string]struct{})}
}

// Name returns the problem name.
func (p *Problem) Name() string { return p.name }

// NumVars returns the number of variables.
func (p *Problem) NumVars() int { return len(p.vars) }

// NumConstraints returns the number of constraints.
func (p *Problem) NumConstraints() int { return len(p.cons) }

// AddBinary adds a {0,1} variable.
func (p *Problem) AddBinary(name string) (Var, error) {
	return p.addVar(name, Binary, 0, 1)
}

// AddInteger adds an integer variable in [lb, ub]; ub may be +Inf.
func (p *Problem) AddInteger(name string, lb, ub float64) (Var, error) {
	return p.addVar(name, Integer, lb, ub)
}

// AddContinuous adds a continuous variable in [lb, ub]; ub may be +Inf.
func (p *Problem) AddContinuous(name string, lb, ub float64) (Var, error) {
	return p.addVar(name, Continuous, lb, ub)
}

func (p *Problem) addVar(name string, kind Kind, lb, ub float64) (Var, error) {
	if err := p.claim(name); err != nil {
		return -1, err
	}
	if math.IsNaN(lb) || math.IsNaN(ub) || math.IsInf(lb, 0) || lb > ub {
		delete(p.names, name)
		return -1, fmt.Errorf("variable %q [%g, %g]: %w", name, lb, ub, ErrBadBounds)
	}
	p.vars = append(p.vars, variable{name: name, kind: kind, lb: lb, ub: ub})

	return Var(len(p.vars) - 1), nil
}

func (p *Problem) claim(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, dup := p.names[name]; dup {
		return fmt.Errorf("%q: %w", name, ErrDuplicateName)
	}
	p.names[name] = struct{}{}

	return nil
}

func (p *Problem) checkTerms(terms []Term) error {
	for _, t := range terms {
		if t.Var < 0 || int(t.Var) >= len(p.vars) {
			return fmt.Errorf("var %d: %w", t.Var, ErrUnknownVar)
		}
	}

	return nil
}

// AddConstraint adds the named constraint lhs (sense) rhs.
func (p *Problem) AddConstraint(name string, lhs *Expr, sense Sense, rhs float64) error {
	if err := p.checkTerms(lhs.Terms); err != nil {
		return fmt.Errorf("constraint %q: %w", name, err)
	}
	if err := p.claim(name); err != nil {
		return err
	}
	p.cons = append(p.cons, Constraint{
		Name:  name,
		Terms: lhs.normalized(),
		Sense: sense,
		RHS:   rhs - lhs.Constant,
	})

	return nil
}

// SetObjective replaces the objective.
func (p *Problem) SetObjective(e *Expr, dir Direction) error {
	if err := p.checkTerms(e.Terms); err != nil {
		return fmt.Errorf("objective: %w", err)
	}
	p.objective = e.normalized()
	p.objConst = e.Constant
	p.direction = dir

	return nil
}

// Direction returns the objective sense.
func (p *Problem) Direction() Direction { return p.direction }

// VarName returns the name of v.
func (p *Problem) VarName(v Var) string { return p.vars[v].name }

// VarKind returns the kind of v.
func (p *Problem) VarKind(v Var) Kind { return p.vars[v].kind }

// Bounds returns the bounds of v.
func (p *Problem) Bounds(v Var) (lb, ub float64) { return p.vars[v].lb, p.vars[v].ub }

// Constraints returns a copy of the constraints in insertion order.
func (p *Problem) Constraints() []Constraint {
	out := make([]Constraint, len(p.cons))
	copy(out, p.cons)

	return out
}

// Constraint returns the constraint with the given name.
func (p *Problem) Constraint(name string) (Constraint, bool) {
	for _, c := range p.cons {
		if c.Name == name {
			return c, true
		}
	}

	return Constraint{}, false
}

// ObjectiveValue evaluates the objective at values.
func (p *Problem) ObjectiveValue(values []float64) float64 {
	s := p.objConst
	for _, t := range p.objective {
		s += t.Coef * values[t.Var]
	}

	return s
}

// Violation returns the largest violation of any bound, integrality
// requirement or constraint at values; 0 means values is feasible.
func (p *Problem) Violation(values []float64) float64 {
	var worst float64
	bump := func(d float64) {
		if d > worst {
			worst = d
		}
	}
	for j, v := range p.vars {
		x := values[j]
		bump(v.lb - x)
		bump(x - v.ub)
		if v.kind != Continuous {
			bump(math.Abs(x - math.Round(x)))
		}
	}
	for _, c := range p.cons {
		var lhs float64
		for _, t := range c.Terms {
			lhs += t.Coef * values[t.Var]
		}
		switch c.Sense {
		case LE:
			bump(lhs - c.RHS)
		case GE:
			bump(c.RHS - lhs)
		case EQ:
			bump(math.Abs(lhs - c.RHS))
		}
	}

	return worst
}

// objectiveIntegral reports whether every feasible objective value is an
// integer: integer variables with integer coefficients and constant.
func (p *Problem) objectiveIntegral() bool {
	if p.objConst != math.Trunc(p.objConst) {
		return false
	}
	for _, t := range p.objective {
		if p.vars[t.Var].kind == Continuous || t.Coef != math.Trunc(t.Coef) {
			return false
		}
	}

	return true
}
