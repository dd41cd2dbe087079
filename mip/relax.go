// SPDX-License-Identifier: MIT

package mip

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

var (
	// errRelaxInfeasible marks a relaxation without feasible points.
	errRelaxInfeasible = errors.New("mip: relaxation infeasible")

	// errRelaxNumeric marks a relaxation the simplex could not finish.
	errRelaxNumeric = errors.New("mip: relaxation failed numerically")

	// errArtificial marks a penalised solve that kept an artificial column
	// above zero.
	errArtificial = errors.New("mip: artificial column left in solution")
)

const (
	// simplexTol is handed to gonum's simplex as its pivoting tolerance.
	simplexTol = 1e-10

	// feasTol absorbs rounding when a row has no free variable left.
	feasTol = 1e-9

	// artTol is the largest artificial value read as zero.
	artTol = 1e-7

	// basePenalty scales the cost of artificial columns relative to the
	// largest objective coefficient; penaltyStep is the escalation applied
	// before a relaxation is declared infeasible.
	basePenalty = 1e4
	penaltyStep = 1e4
)

// relaxation is the LP of a node: the problem with integrality dropped and
// variable bounds tightened to [lb, ub].
//
// Standard form used by gonum (minimize cᵀx s.t. Ax = b, x ≥ 0) is built as:
//   - a variable with lb == ub is substituted by its value;
//   - every other variable is shifted, x = lb + x', x' ≥ 0;
//   - LE and GE rows get a slack column, EQ rows stay equalities;
//   - a finite ub adds the row x' + s = ub - lb;
//   - rows are negated where needed so that b ≥ 0.
//
// Rows whose slack cannot start in the basis (equalities and rows negated to
// make b ≥ 0) get an artificial column with a large cost. Slack and
// artificial columns then form an identity basis that is feasible by
// construction, so gonum never has to search for one.
type relaxation struct {
	p       *Problem
	sign    float64 // +1 minimize, -1 maximize: the LP always minimizes sign·obj
	lb, ub  []float64
	maxRows int // 0 means no limit
}

// relaxResult is the optimum of a relaxation in the problem's own variable space.
type relaxResult struct {
	x   []float64
	obj float64 // sign·objective (minimisation form)
}

// lpRow is one row over free columns: Σ coef·x' (≤ or =) rhs.
type lpRow struct {
	idx  []int
	coef []float64
	rhs  float64
	eq   bool
}

// lpForm is a relaxation reduced to rows over packed LP columns.
type lpForm struct {
	n        int
	base     []float64 // value of every variable at x' = 0
	lpCol    []int     // variable → LP column, -1 if fixed or dropped
	nCols    int
	rows     []lpRow
	cost     []float64 // per LP column
	constant float64
}

func (r *relaxation) solve() (relaxResult, error) {
	f, err := r.form()
	if err != nil {
		return relaxResult{}, err
	}
	if len(f.rows) == 0 {
		return relaxResult{x: f.base, obj: f.constant}, nil
	}

	scale := 1.0
	for _, c := range f.cost {
		scale = math.Max(scale, math.Abs(c))
	}

	res, err := f.solve(basePenalty * scale)
	if errors.Is(err, errArtificial) {
		res, err = f.solve(basePenalty * penaltyStep * scale)
		if errors.Is(err, errArtificial) {
			return relaxResult{}, errRelaxInfeasible
		}
	}
	if errors.Is(err, errRelaxNumeric) {
		// Let gonum pick its own starting basis instead.
		res, err = f.solve(0)
	}

	return res, err
}

// form substitutes fixed variables, shifts the rest and collects the rows.
func (r *relaxation) form() (*lpForm, error) {
	n := len(r.p.vars)
	f := &lpForm{n: n, base: make([]float64, n), lpCol: make([]int, n)}

	free := make([]int, n) // variable → free index, -1 if fixed
	nFree := 0
	for j := 0; j < n; j++ {
		f.base[j] = r.lb[j]
		if r.lb[j] == r.ub[j] {
			free[j] = -1
			continue
		}
		free[j] = nFree
		nFree++
	}

	addRow := func(terms []Term, rhs float64, eq bool) error {
		rw := lpRow{rhs: rhs, eq: eq}
		for _, t := range terms {
			rw.rhs -= t.Coef * f.base[t.Var]
			if c := free[t.Var]; c >= 0 {
				rw.idx = append(rw.idx, c)
				rw.coef = append(rw.coef, t.Coef)
			}
		}
		if len(rw.idx) == 0 {
			if rw.rhs < -feasTol || (eq && rw.rhs > feasTol) {
				return errRelaxInfeasible
			}
			return nil
		}
		f.rows = append(f.rows, rw)

		return nil
	}
	for _, c := range r.p.cons {
		var err error
		switch c.Sense {
		case LE:
			err = addRow(c.Terms, c.RHS, false)
		case GE:
			err = addRow(negate(c.Terms), -c.RHS, false)
		case EQ:
			err = addRow(c.Terms, c.RHS, true)
		}
		if err != nil {
			return nil, err
		}
	}
	for j := 0; j < n; j++ {
		if free[j] < 0 || math.IsInf(r.ub[j], 1) {
			continue
		}
		f.rows = append(f.rows, lpRow{idx: []int{free[j]}, coef: []float64{1}, rhs: r.ub[j] - r.lb[j]})
	}
	if r.maxRows > 0 && len(f.rows) > r.maxRows {
		return nil, fmt.Errorf("%d rows, limit %d: %w", len(f.rows), r.maxRows, ErrTooLarge)
	}

	freeCost := make([]float64, nFree)
	f.constant = r.sign * r.p.objConst
	for _, t := range r.p.objective {
		f.constant += r.sign * t.Coef * f.base[t.Var]
		if c := free[t.Var]; c >= 0 {
			freeCost[c] += r.sign * t.Coef
		}
	}

	// Columns that appear in no row: unbounded if they improve the
	// objective, otherwise parked at their lower bound.
	used := make([]bool, nFree)
	for _, rw := range f.rows {
		for _, c := range rw.idx {
			used[c] = true
		}
	}
	packed := make([]int, nFree)
	for c := 0; c < nFree; c++ {
		if !used[c] {
			if freeCost[c] < 0 {
				return nil, ErrUnbounded
			}
			packed[c] = -1
			continue
		}
		packed[c] = f.nCols
		f.cost = append(f.cost, freeCost[c])
		f.nCols++
	}
	for i := range f.rows {
		for k, c := range f.rows[i].idx {
			f.rows[i].idx[k] = packed[c]
		}
	}
	for j := 0; j < n; j++ {
		f.lpCol[j] = -1
		if free[j] >= 0 {
			f.lpCol[j] = packed[free[j]]
		}
	}

	return f, nil
}

func negate(terms []Term) []Term {
	out := make([]Term, len(terms))
	for i, t := range terms {
		out[i] = Term{Var: t.Var, Coef: -t.Coef}
	}

	return out
}

// solve runs the simplex on f. A positive penalty adds artificial columns
// and an identity starting basis; penalty 0 leaves the start to gonum.
func (f *lpForm) solve(penalty float64) (res relaxResult, err error) {
	m := len(f.rows)
	withBasis := penalty > 0

	// Column layout: structural | slacks | artificials.
	slack := make([]int, m)
	art := make([]int, m)
	width := f.nCols
	for i, rw := range f.rows {
		slack[i], art[i] = -1, -1
		if !rw.eq {
			slack[i] = width
			width++
		}
	}
	for i, rw := range f.rows {
		if withBasis && (rw.eq || rw.rhs < 0) {
			art[i] = width
			width++
		}
	}
	if width < m {
		// More equalities than columns: gonum requires m ≤ n.
		return relaxResult{}, fmt.Errorf("%d rows over %d columns: %w", m, width, errRelaxNumeric)
	}

	A := mat.NewDense(m, width, nil)
	b := make([]float64, m)
	c := make([]float64, width)
	copy(c, f.cost)
	var basic []int
	if withBasis {
		basic = make([]int, m)
	}
	for i, rw := range f.rows {
		s := 1.0
		if rw.rhs < 0 {
			s = -1
		}
		for k, col := range rw.idx {
			A.Set(i, col, A.At(i, col)+s*rw.coef[k])
		}
		b[i] = s * rw.rhs
		if slack[i] >= 0 {
			A.Set(i, slack[i], s)
		}
		if !withBasis {
			continue
		}
		if art[i] >= 0 {
			A.Set(i, art[i], 1)
			c[art[i]] = penalty
			basic[i] = art[i]
		} else {
			basic[i] = slack[i]
		}
	}

	// gonum panics on inputs it considers malformed; treat that as a
	// numerical failure of this node.
	defer func() {
		if rec := recover(); rec != nil {
			res, err = relaxResult{}, fmt.Errorf("%v: %w", rec, errRelaxNumeric)
		}
	}()

	_, optX, lpErr := lp.Simplex(c, A, b, simplexTol, basic)
	switch {
	case errors.Is(lpErr, lp.ErrInfeasible):
		return relaxResult{}, errRelaxInfeasible
	case errors.Is(lpErr, lp.ErrUnbounded):
		return relaxResult{}, ErrUnbounded
	case lpErr != nil:
		return relaxResult{}, fmt.Errorf("%v: %w", lpErr, errRelaxNumeric)
	}
	for i := range art {
		if art[i] >= 0 && optX[art[i]] > artTol*(1+math.Abs(b[i])) {
			return relaxResult{}, errArtificial
		}
	}

	x := make([]float64, f.n)
	copy(x, f.base)
	obj := f.constant
	for j := 0; j < f.n; j++ {
		if col := f.lpCol[j]; col >= 0 {
			x[j] += optX[col]
		}
	}
	for col := 0; col < f.nCols; col++ {
		obj += f.cost[col] * optX[col]
	}

	return relaxResult{x: x, obj: obj}, nil
}
