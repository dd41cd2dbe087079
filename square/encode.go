// SPDX-License-Identifier: MIT

package square

import (
	"fmt"

	"github.com/katalvlaran/hanzisquare/graph"
	"github.com/katalvlaran/hanzisquare/mip"
)

// build encodes the model. Components and characters are addressed by their
// index in the graph's node and character order, so every name in the
// problem is plain ASCII.
func (m *Model) build() error {
	var (
		n     = len(m.nodes)
		chars = m.g.Chars()
		arcs  = m.g.Arcs()
		bigM  = float64(m.bigM)
		err   error
	)
	m.p = mip.NewProblem("HanziSquare")
	m.x = make([]mip.Var, n)
	m.y = make([]mip.Var, n)
	m.z = make(map[graph.Arc]mip.Var, len(arcs))
	m.u = make([]mip.Var, len(chars))

	// Variables.
	for i := 0; i < n; i++ {
		if m.x[i], err = m.p.AddBinary(fmt.Sprintf("x_%d", i)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if m.y[i], err = m.p.AddBinary(fmt.Sprintf("y_%d", i)); err != nil {
			return err
		}
	}
	for _, a := range arcs {
		i, j := m.g.NodeIndex(a.From), m.g.NodeIndex(a.To)
		if m.z[a], err = m.p.AddBinary(fmt.Sprintf("z_%d_%d", i, j)); err != nil {
			return err
		}
	}
	for k := range chars {
		if m.u[k], err = m.p.AddBinary(fmt.Sprintf("u_%d", k)); err != nil {
			return err
		}
	}
	if m.v, err = m.p.AddInteger("v", 0, bigM); err != nil {
		return err
	}

	if err = m.p.SetObjective(mip.Sum(m.v), mip.Maximize); err != nil {
		return err
	}

	// Row count = column count = v.
	if err = m.p.AddConstraint("rows", mip.Sum(m.x...).Add(m.v, -1), mip.EQ, 0); err != nil {
		return err
	}
	if err = m.p.AddConstraint("cols", mip.Sum(m.y...).Add(m.v, -1), mip.EQ, 0); err != nil {
		return err
	}

	// z_ij = x_i ∧ y_j.
	for _, a := range arcs {
		i, j := m.g.NodeIndex(a.From), m.g.NodeIndex(a.To)
		z := m.z[a]
		if err = m.p.AddConstraint(fmt.Sprintf("and_%d_%d", i, j),
			mip.Sum(z).Add(m.x[i], -1).Add(m.y[j], -1), mip.GE, -1); err != nil {
			return err
		}
		if err = m.p.AddConstraint(fmt.Sprintf("and_x_%d_%d", i, j),
			mip.Sum(z).Add(m.x[i], -1), mip.LE, 0); err != nil {
			return err
		}
		if err = m.p.AddConstraint(fmt.Sprintf("and_y_%d_%d", i, j),
			mip.Sum(z).Add(m.y[j], -1), mip.LE, 0); err != nil {
			return err
		}
	}

	// A component is a row label, a column label, or neither.
	for i := 0; i < n; i++ {
		if err = m.p.AddConstraint(fmt.Sprintf("either_%d", i), mip.Sum(m.x[i], m.y[i]), mip.LE, 1); err != nil {
			return err
		}
	}

	// Completeness: a selected row meets exactly v selected columns, and
	// symmetrically. Σz ≤ v + M(1−s) and Σz ≥ v − M(1−s) with s the selector.
	for i, node := range m.nodes {
		fwd := m.g.Forward(node)
		sum := mip.NewExpr()
		for _, j := range fwd {
			sum.Add(m.z[graph.Arc{From: node, To: j}], 1)
		}
		if err = m.addConditionalEq(fmt.Sprintf("row_%d", i), sum, m.x[i], bigM); err != nil {
			return err
		}

		bwd := m.g.Backward(node)
		sum = mip.NewExpr()
		for _, k := range bwd {
			sum.Add(m.z[graph.Arc{From: k, To: node}], 1)
		}
		if err = m.addConditionalEq(fmt.Sprintf("col_%d", i), sum, m.y[i], bigM); err != nil {
			return err
		}
	}

	// Character activity: u_c = Σ z over the arcs c owns.
	for k, c := range chars {
		e := mip.Sum(m.u[k])
		for _, a := range m.g.CharArcs(c) {
			e.Add(m.z[a], -1)
		}
		if err = m.p.AddConstraint(fmt.Sprintf("char_%d", k), e, mip.EQ, 0); err != nil {
			return err
		}
	}

	seen := make(map[int]bool, len(m.fixed))
	for _, i := range m.fixed {
		if seen[i] {
			continue
		}
		seen[i] = true
		if err = m.p.AddConstraint(fmt.Sprintf("fixed_%d", i), mip.Sum(m.x[i]), mip.EQ, 1); err != nil {
			return err
		}
	}

	// Rows and columns are interchangeable, so each cut also excludes the mirror.
	for k, cut := range m.cuts {
		rows, cols := cut[0], cut[1]
		rhs := float64(len(rows) + len(cols) - 1)

		direct := mip.NewExpr()
		mirror := mip.NewExpr()
		for _, i := range rows {
			direct.Add(m.x[i], 1)
			mirror.Add(m.y[i], 1)
		}
		for _, j := range cols {
			direct.Add(m.y[j], 1)
			mirror.Add(m.x[j], 1)
		}
		if err = m.p.AddConstraint(fmt.Sprintf("cut_%d", k), direct, mip.LE, rhs); err != nil {
			return err
		}
		if err = m.p.AddConstraint(fmt.Sprintf("cut_mirror_%d", k), mirror, mip.LE, rhs); err != nil {
			return err
		}
	}

	return nil
}

// addConditionalEq encodes "sel = 1 ⇒ sum = v" as the big-M pair
//
//	sum − v + M·sel ≤ M
//	sum − v − M·sel ≥ −M
func (m *Model) addConditionalEq(prefix string, sum *mip.Expr, sel mip.Var, bigM float64) error {
	le := mip.NewExpr().AddExpr(sum, 1).Add(m.v, -1).Add(sel, bigM)
	if err := m.p.AddConstraint(prefix+"_le", le, mip.LE, bigM); err != nil {
		return err
	}
	ge := mip.NewExpr().AddExpr(sum, 1).Add(m.v, -1).Add(sel, -bigM)

	return m.p.AddConstraint(prefix+"_ge", ge, mip.GE, -bigM)
}
