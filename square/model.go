// SPDX-License-Identifier: MIT

package square

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/hanzisquare/graph"
	"github.com/katalvlaran/hanzisquare/mip"
)

// Model is one square search over a graph. It is built for a single
// attempt: every solve of an enumeration builds a fresh Model so that the
// cutoffs of earlier rounds become part of the encoding.
type Model struct {
	g    *graph.Graph
	opts Options
	bigM int
	side int

	// nodes are the graph components; a node's position is its index in x and y.
	nodes []string
	fixed []int
	cuts  [][2][]int

	p *mip.Problem
	x []mip.Var
	y []mip.Var
	z map[graph.Arc]mip.Var
	u []mip.Var
	v mip.Var
}

// New validates the options against g and prepares a Model.
func New(g *graph.Graph, opts ...Option) (*Model, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return NewWithOptions(g, o)
}

// NewWithOptions is New with a pre-assembled Options value.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - ErrBadOptions on a negative bound, time limit, gap or row cap.
//   - ErrUnknownNode when a fixed node or cutoff label is not a component.
//
// A positive bound below SideLimit is honoured but logged as a warning,
// since it may hide larger squares.
func NewWithOptions(g *graph.Graph, o Options) (*Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Solver == nil {
		o.Solver = mip.NewBranchAndBound()
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	m := &Model{g: g, opts: o, nodes: g.Nodes()}
	m.side = sideLimit(g, m.nodes)
	switch {
	case o.Bound == 0:
		m.bigM = min(len(m.nodes), m.side)
	case o.Bound < m.side:
		m.bigM = o.Bound
		o.Logger.Warn("bound below the largest possible square; results are capped",
			"bound", o.Bound,
			"side_limit", m.side)
	default:
		m.bigM = m.side
	}

	var err error
	if m.fixed, err = m.indices(o.FixedNodes); err != nil {
		return nil, fmt.Errorf("fixed nodes: %w", err)
	}
	for k, sol := range o.Cutoffs {
		if sol.Empty() {
			// An empty square excludes nothing; its cut would read 0 ≤ −1.
			continue
		}
		rows, err := m.indices(sol.Rows)
		if err != nil {
			return nil, fmt.Errorf("cutoff %d: %w", k, err)
		}
		cols, err := m.indices(sol.Cols)
		if err != nil {
			return nil, fmt.Errorf("cutoff %d: %w", k, err)
		}
		m.cuts = append(m.cuts, [2][]int{rows, cols})
	}

	return m, nil
}

func (m *Model) indices(labels []string) ([]int, error) {
	out := make([]int, 0, len(labels))
	for _, l := range labels {
		i := m.g.NodeIndex(l)
		if i < 0 {
			return nil, fmt.Errorf("%q: %w", l, ErrUnknownNode)
		}
		out = append(out, i)
	}

	return out, nil
}

// BigM returns the big-M constant in use, which is also the cap on v:
// the requested bound (the node count by default) clamped to SideLimit.
func (m *Model) BigM() int { return m.bigM }

// SideLimit returns an upper bound on the side of any square of the graph:
// half the node count, and no more than the largest number of distinct
// successors or predecessors of a single node.
func (m *Model) SideLimit() int { return m.side }

func sideLimit(g *graph.Graph, nodes []string) int {
	maxFwd, maxBwd := 0, 0
	for _, n := range nodes {
		maxFwd = max(maxFwd, degree(n, g.Forward(n)))
		maxBwd = max(maxBwd, degree(n, g.Backward(n)))
	}

	return min(len(nodes)/2, maxFwd, maxBwd)
}

// degree counts the neighbours of n other than n itself.
func degree(n string, adj []string) int {
	d := 0
	for _, a := range adj {
		if a != n {
			d++
		}
	}

	return d
}

// Problem returns the MIP encoding, building it on first use.
func (m *Model) Problem() (*mip.Problem, error) {
	if m.p == nil {
		if err := m.build(); err != nil {
			m.p = nil
			return nil, fmt.Errorf("square: build model: %w", err)
		}
		m.opts.Logger.Info("model built",
			"nodes", len(m.nodes),
			"arcs", m.g.ArcCount(),
			"chars", len(m.u),
			"vars", m.p.NumVars(),
			"constraints", m.p.NumConstraints(),
			"big_m", m.bigM,
			"fixed", len(m.fixed),
			"cutoffs", len(m.cuts))
	}

	return m.p, nil
}

// Solve runs the solver once and extracts the square.
//
// Infeasible models and limits reached without an incumbent yield empty row
// and column lists with the corresponding status, not an error. A limit
// reached with an incumbent yields that incumbent with status Feasible.
func (m *Model) Solve(ctx context.Context) (Result, error) {
	p, err := m.Problem()
	if err != nil {
		return Result{}, err
	}
	log := m.opts.Logger

	if m.opts.ProblemFile != "" {
		if err := writeProblem(m.opts.ProblemFile, p); err != nil {
			return Result{}, err
		}
		log.Debug("problem file written", "path", m.opts.ProblemFile)
	}

	prm := mip.DefaultParams()
	prm.TimeLimit = m.opts.TimeLimit
	prm.MIPGap = m.opts.MIPGap
	prm.MaxRows = m.opts.MaxRows
	if rows, cols, ok := m.greedy(); ok {
		prm.Start = m.startVector(rows, cols)
		log.Info("heuristic square", "size", len(rows))
	}

	start := time.Now()
	sol, err := m.opts.Solver.Solve(ctx, p, prm)
	if err != nil {
		return Result{}, fmt.Errorf("square: solve: %w", err)
	}
	res := Result{
		Status:    sol.Status,
		Objective: sol.Objective,
		Bound:     sol.Bound,
		Elapsed:   time.Since(start),
	}
	if sol.HasSolution() {
		res.Solution = m.extract(sol)
	}

	log.Info("solve finished",
		"status", res.Status.String(),
		"size", len(res.Rows),
		"bound", res.Bound,
		"nodes", sol.Nodes,
		"elapsed", res.Elapsed)

	return res, nil
}

// extract reads the row and column labels in node order.
func (m *Model) extract(sol *mip.Solution) Solution {
	out := Solution{Rows: make([]string, 0), Cols: make([]string, 0)}
	for i, n := range m.nodes {
		if sol.Value(m.x[i]) > extractThreshold {
			out.Rows = append(out.Rows, n)
		}
		if sol.Value(m.y[i]) > extractThreshold {
			out.Cols = append(out.Cols, n)
		}
	}

	return out
}

func writeProblem(path string, p *mip.Problem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("square: problem file: %w", err)
	}
	if err = mip.WriteLP(f, p); err != nil {
		_ = f.Close()
		return fmt.Errorf("square: problem file %q: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("square: problem file %q: %w", path, err)
	}

	return nil
}
