// SPDX-License-Identifier: MIT

package mip

import (
	"context"
	"errors"
	"fmt"
	"math"
)

const (
	defaultIntTol = 1e-6
	objEps        = 1e-9
	acceptTol     = 1e-6 // largest violation tolerated on a rounded incumbent
)

// BranchAndBound is the built-in pure Go MIP solver: best-first
// branch-and-bound over LP relaxations. The zero value is ready to use.
//
//  1. The root relaxation drops integrality; integer bounds are rounded inward.
//  2. Params.Start, when feasible, is the first incumbent.
//  3. Nodes are explored best bound first (see nodeQueue). Because the popped
//     bound is the global one, a popped node that cannot beat the incumbent
//     closes the whole search.
//  4. Branching picks the most fractional integer variable (lowest index on
//     ties) and creates x ≤ ⌊v⌋ and x ≥ ⌈v⌉ children; the up child is
//     explored first on equal bounds.
//  5. When every objective coefficient is an integer on an integer variable,
//     a node is pruned unless its bound can improve the incumbent by 1.
//  6. The time limit is a context deadline. A relaxation still running when
//     it passes is abandoned and its node stays open.
//  7. A relaxation above Params.MaxRows is never attempted: the solve ends
//     Feasible with the start, or fails with ErrTooLarge without one.
//
// Complexity: exponential in the number of integer variables in the worst
// case; each node costs one dense simplex solve of the tightened LP.
type BranchAndBound struct{}

// NewBranchAndBound returns the built-in solver.
func NewBranchAndBound() *BranchAndBound { return &BranchAndBound{} }

// Solve implements Solver.
func (s *BranchAndBound) Solve(ctx context.Context, p *Problem, prm Params) (*Solution, error) {
	if err := prm.validate(); err != nil {
		return nil, err
	}
	if prm.Start != nil && len(prm.Start) != p.NumVars() {
		return nil, fmt.Errorf("start has %d values for %d variables: %w", len(prm.Start), p.NumVars(), ErrBadParams)
	}
	if prm.IntTol == 0 {
		prm.IntTol = defaultIntTol
	}
	if prm.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, prm.TimeLimit)
		defer cancel()
	}

	e := &bbEngine{
		p:      p,
		prm:    prm,
		sign:   1,
		intObj: p.objectiveIntegral(),
		incObj: math.Inf(1),
	}
	if p.direction == Maximize {
		e.sign = -1
	}

	return e.run(ctx)
}

// bbEngine holds the search state of one Solve call.
type bbEngine struct {
	p      *Problem
	prm    Params
	sign   float64
	intObj bool

	queue nodeQueue
	seq   int
	nodes int

	// incumbent in minimisation form
	incumbent []float64
	incObj    float64
	hasInc    bool

	limitHit   bool
	gapStop    bool
	lpFailures int
}

func (e *bbEngine) run(ctx context.Context) (*Solution, error) {
	root, ok := e.rootNode()
	if !ok {
		return &Solution{Status: Infeasible, Objective: math.NaN(), Bound: math.NaN()}, nil
	}
	if e.prm.Start != nil {
		e.offer(e.prm.Start, false)
	}
	e.queue.push(root)

	for e.queue.Len() > 0 {
		if ctx.Err() != nil || (e.prm.NodeLimit > 0 && e.nodes >= e.prm.NodeLimit) {
			e.limitHit = true
			break
		}

		nd := e.queue.pop()
		if e.hasInc && e.dominated(nd.bound) {
			// Best-first: every open node is at least as bad.
			e.queue = e.queue[:0]
			break
		}
		if e.hasInc && relGap(e.incObj, nd.bound) <= e.prm.MIPGap {
			e.queue.push(nd)
			e.gapStop = true
			break
		}

		e.nodes++
		res, err := e.relax(ctx, nd)
		switch {
		case errors.Is(err, ErrTooLarge) && !e.hasInc:
			return nil, err
		case errors.Is(err, errAbandoned), errors.Is(err, ErrTooLarge):
			e.queue.push(nd)
			e.limitHit = true

			return e.finish(), nil
		case errors.Is(err, errRelaxInfeasible):
			continue
		case errors.Is(err, ErrUnbounded) && nd.depth == 0:
			return nil, ErrUnbounded
		case err != nil:
			e.lpFailures++
			continue
		}
		if e.hasInc && e.dominated(res.obj) {
			continue
		}

		j := e.branchVar(res.x)
		if j < 0 {
			e.offer(res.x, true)
			continue
		}
		e.branch(nd, j, res)
	}

	return e.finish(), nil
}

// rootNode rounds integer bounds inward; ok is false on empty domains.
func (e *bbEngine) rootNode() (*bbNode, bool) {
	n := len(e.p.vars)
	nd := &bbNode{lb: make([]float64, n), ub: make([]float64, n), bound: math.Inf(-1)}
	for j, v := range e.p.vars {
		lb, ub := v.lb, v.ub
		if v.kind != Continuous {
			lb = math.Ceil(lb - e.prm.IntTol)
			if !math.IsInf(ub, 1) {
				ub = math.Floor(ub + e.prm.IntTol)
			}
		}
		if lb > ub {
			return nil, false
		}
		nd.lb[j], nd.ub[j] = lb, ub
	}

	return nd, true
}

// dominated reports whether a node bounded by bound cannot improve the incumbent.
func (e *bbEngine) dominated(bound float64) bool {
	if e.intObj {
		return math.Ceil(bound-e.prm.IntTol) >= e.incObj-objEps
	}

	return bound >= e.incObj-objEps
}

// branchVar returns the most fractional integer variable, or -1.
func (e *bbEngine) branchVar(x []float64) int {
	best, bestDist := -1, e.prm.IntTol
	for j, v := range e.p.vars {
		if v.kind == Continuous {
			continue
		}
		frac := x[j] - math.Floor(x[j])
		dist := math.Min(frac, 1-frac)
		if dist > bestDist {
			best, bestDist = j, dist
		}
	}

	return best
}

func (e *bbEngine) branch(parent *bbNode, j int, res relaxResult) {
	up := e.child(parent, res.obj)
	up.lb[j] = math.Ceil(res.x[j])
	down := e.child(parent, res.obj)
	down.ub[j] = math.Floor(res.x[j])

	e.queue.push(up)
	e.queue.push(down)
}

func (e *bbEngine) child(parent *bbNode, bound float64) *bbNode {
	e.seq++
	nd := &bbNode{
		lb:    append([]float64(nil), parent.lb...),
		ub:    append([]float64(nil), parent.ub...),
		bound: bound,
		depth: parent.depth + 1,
		seq:   e.seq,
	}

	return nd
}

// errAbandoned marks a relaxation left running past the deadline.
var errAbandoned = errors.New("mip: relaxation abandoned")

// relax solves the relaxation of nd. Without a deadline it runs inline;
// otherwise it runs aside so the search can stop when ctx is done. gonum's
// simplex cannot be interrupted, so an abandoned solve finishes in the
// background and its result is dropped.
func (e *bbEngine) relax(ctx context.Context, nd *bbNode) (relaxResult, error) {
	r := &relaxation{p: e.p, sign: e.sign, lb: nd.lb, ub: nd.ub, maxRows: e.prm.MaxRows}
	if ctx.Done() == nil {
		return r.solve()
	}

	type outcome struct {
		res relaxResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := r.solve()
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return relaxResult{}, errAbandoned
	}
}

// offer rounds an integral point and keeps it if it improves the incumbent.
// A relaxation point that no longer satisfies the model after rounding is
// counted as a numerical failure; a rejected start is simply dropped.
func (e *bbEngine) offer(x []float64, fromLP bool) {
	xr := make([]float64, len(x))
	for j, v := range e.p.vars {
		xr[j] = x[j]
		if v.kind != Continuous {
			xr[j] = noNegZero(math.Round(x[j]))
		}
	}
	if e.p.Violation(xr) > acceptTol {
		if fromLP {
			e.lpFailures++
		}
		return
	}
	obj := e.sign * e.p.ObjectiveValue(xr)
	if !e.hasInc || obj < e.incObj-objEps {
		e.incumbent, e.incObj, e.hasInc = xr, obj, true
	}
}

func (e *bbEngine) finish() *Solution {
	sol := &Solution{Nodes: e.nodes, Objective: math.NaN(), Bound: math.NaN()}
	closed := !e.limitHit && e.lpFailures == 0

	open := math.Inf(1)
	for _, nd := range e.queue {
		open = math.Min(open, nd.bound)
	}

	if !e.hasInc {
		if closed {
			sol.Status = Infeasible
			return sol
		}
		sol.Status = NoSolution
		if !math.IsInf(open, 0) {
			sol.Bound = noNegZero(e.sign * open)
		}
		return sol
	}

	sol.values = e.incumbent
	sol.Objective = e.p.ObjectiveValue(e.incumbent)
	bound := math.Min(e.incObj, open)
	switch {
	case closed && !e.gapStop:
		sol.Status = Optimal
		bound = e.incObj
	case e.gapStop && e.lpFailures == 0:
		sol.Status = Optimal
	default:
		sol.Status = Feasible
	}
	if !math.IsInf(bound, 0) {
		sol.Bound = noNegZero(e.sign * bound)
	}

	return sol
}

// noNegZero maps -0 to +0 so reported values print cleanly.
func noNegZero(x float64) float64 {
	if x == 0 {
		return 0
	}

	return x
}
