package mip_test

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hanzisquare/mip"
)

func TestWriteLP(t *testing.T) {
	p := mip.NewProblem("demo")
	x, _ := p.AddBinary("x_0")
	y, _ := p.AddBinary("y_0")
	v, _ := p.AddInteger("v", 0, math.Inf(1))
	require.NoError(t, p.AddConstraint("rows", mip.Sum(x).Add(v, -1), mip.EQ, 0))
	require.NoError(t, p.AddConstraint("either_0", mip.Sum(x, y), mip.LE, 1))
	require.NoError(t, p.SetObjective(mip.Sum(v), mip.Maximize))

	var buf bytes.Buffer
	require.NoError(t, mip.WriteLP(&buf, p))

	want := strings.Join([]string{
		`\ Problem: demo`,
		`Maximize`,
		` obj: + 1 v`,
		`Subject To`,
		` rows: + 1 x_0 - 1 v = 0`,
		` either_0: + 1 x_0 + 1 y_0 <= 1`,
		`Bounds`,
		` 0 <= v <= +inf`,
		`Binaries`,
		` x_0 y_0`,
		`Generals`,
		` v`,
		`End`,
		``,
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestWriteLPWrapsLongRows(t *testing.T) {
	p := mip.NewProblem("wide")
	vars := make([]mip.Var, 20)
	for i := range vars {
		vars[i], _ = p.AddBinary(fmt.Sprintf("b_%d", i))
	}
	require.NoError(t, p.AddConstraint("all", mip.Sum(vars...), mip.GE, 1))

	var buf bytes.Buffer
	require.NoError(t, mip.WriteLP(&buf, p))
	for _, line := range strings.Split(buf.String(), "\n") {
		require.Less(t, len(line), 255)
	}
	require.Contains(t, buf.String(), "Minimize")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteLPPropagatesErrors(t *testing.T) {
	p := mip.NewProblem("x")
	_, _ = p.AddBinary("a")
	err := mip.WriteLP(brokenWriter{}, p)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
