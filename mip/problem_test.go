package mip_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/mip"
)

func TestAddVarValidation(t *testing.T) {
	p := mip.NewProblem("t")

	_, err := p.AddBinary("")
	require.ErrorIs(t, err, mip.ErrEmptyName)

	x, err := p.AddBinary("x")
	require.NoError(t, err)
	require.Equal(t, mip.Var(0), x)

	_, err = p.AddBinary("x")
	require.ErrorIs(t, err, mip.ErrDuplicateName)

	_, err = p.AddInteger("bad", 3, 1)
	require.ErrorIs(t, err, mip.ErrBadBounds)
	_, err = p.AddContinuous("free", math.Inf(-1), 0)
	require.ErrorIs(t, err, mip.ErrBadBounds)

	// A rejected name stays available.
	v, err := p.AddInteger("bad", 0, math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, mip.Integer, p.VarKind(v))
	lb, ub := p.Bounds(v)
	require.Equal(t, 0.0, lb)
	require.True(t, math.IsInf(ub, 1))
	require.Equal(t, 2, p.NumVars())
}

func TestAddConstraintNormalizes(t *testing.T) {
	p := mip.NewProblem("t")
	x, _ := p.AddBinary("x")
	y, _ := p.AddBinary("y")

	e := mip.NewExpr().Add(y, 2).Add(x, 1).Add(y, -2).Add(x, 3).AddConst(1)
	require.NoError(t, p.AddConstraint("c", e, mip.LE, 5))

	c, ok := p.Constraint("c")
	require.True(t, ok)
	require.Equal(t, []mip.Term{{Var: x, Coef: 4}}, c.Terms)
	require.Equal(t, 4.0, c.RHS)
	require.Equal(t, mip.LE, c.Sense)

	require.ErrorIs(t, p.AddConstraint("c", mip.Sum(x), mip.LE, 1), mip.ErrDuplicateName)
	require.ErrorIs(t, p.AddConstraint("d", mip.Sum(mip.Var(7)), mip.LE, 1), mip.ErrUnknownVar)
	require.ErrorIs(t, p.SetObjective(mip.Sum(mip.Var(-1)), mip.Maximize), mip.ErrUnknownVar)
	require.Equal(t, 1, p.NumConstraints())
}

func TestExprHelpers(t *testing.T) {
	p := mip.NewProblem("t")
	x, _ := p.AddBinary("x")
	y, _ := p.AddBinary("y")

	e := mip.Sum(x, y).AddExpr(mip.NewExpr().Add(x, 1).AddConst(2), -1)
	require.Equal(t, -2.0, e.Constant)
	require.Equal(t, -1.0, e.Eval([]float64{1, 1}))
}

func TestViolation(t *testing.T) {
	p := mip.NewProblem("t")
	x, _ := p.AddBinary("x")
	v, _ := p.AddInteger("v", 0, 3)
	require.NoError(t, p.AddConstraint("eq", mip.Sum(x).Add(v, -1), mip.EQ, 0))
	require.NoError(t, p.AddConstraint("ge", mip.Sum(v), mip.GE, 1))

	require.Zero(t, p.Violation([]float64{1, 1}))
	require.InDelta(t, 1.0, p.Violation([]float64{0, 0}), 1e-12)
	require.InDelta(t, 0.5, p.Violation([]float64{1, 1.5}), 1e-12)
	require.InDelta(t, 3.0, p.Violation([]float64{1, 4}), 1e-12)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "binary", mip.Binary.String())
	require.Equal(t, ">=", mip.GE.String())
	require.Equal(t, "maximize", mip.Maximize.String())
	require.Equal(t, "infeasible", mip.Infeasible.String())
	require.Equal(t, "no-solution", mip.NoSolution.String())
}
