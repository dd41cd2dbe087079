// SPDX-License-Identifier: MIT

package square

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/hanzisquare/mip"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("square: nil graph")

	// ErrUnknownNode indicates a fixed node or cutoff label that is not a graph component.
	ErrUnknownNode = errors.New("square: unknown node")

	// ErrBadOptions indicates a negative bound, time limit, MIP gap or row cap.
	ErrBadOptions = errors.New("square: invalid options")

	// ErrNotSquare indicates rows and columns of different lengths.
	ErrNotSquare = errors.New("square: rows and columns differ in length")

	// ErrOverlap indicates a component used both as row and column label.
	ErrOverlap = errors.New("square: component is both row and column")

	// ErrMissingCell indicates a (row, column) pair that is not an arc.
	ErrMissingCell = errors.New("square: missing cell")
)

// extractThreshold is the value above which a binary counts as selected;
// it absorbs solver tolerances.
const extractThreshold = 0.9

// Solution is a square: row labels and column labels in graph node order.
type Solution struct {
	Rows []string
	Cols []string
}

// Size returns the side length, or -1 when rows and columns differ.
func (s Solution) Size() int {
	if len(s.Rows) != len(s.Cols) {
		return -1
	}

	return len(s.Rows)
}

// Empty reports whether the solution selects nothing.
func (s Solution) Empty() bool { return len(s.Rows) == 0 && len(s.Cols) == 0 }

// Mirror returns the solution with rows and columns swapped.
func (s Solution) Mirror() Solution { return Solution{Rows: s.Cols, Cols: s.Rows} }

// Result is the outcome of one Model.Solve.
type Result struct {
	Solution

	// Status is the solver status; Infeasible results carry empty lists.
	Status mip.Status

	// Objective is the side length reported by the solver (NaN without a solution).
	Objective float64

	// Bound is the solver's proven upper bound on the side length.
	Bound float64

	// Elapsed is the wall-clock time of the solve.
	Elapsed time.Duration
}

// Options configures a Model.
type Options struct {
	// TimeLimit bounds the solver; 0 means no limit.
	TimeLimit time.Duration

	// MIPGap is the relative optimality gap at which the solver may stop.
	MIPGap float64

	// Bound is the big-M constant and cap on v; 0 means the node count.
	// Either way it is clamped to Model.SideLimit.
	Bound int

	// FixedNodes must appear among the row labels.
	FixedNodes []string

	// Cutoffs are earlier solutions the model must not reproduce.
	Cutoffs []Solution

	// MaxRows caps the relaxation size the built-in solver attempts;
	// 0 means no cap.
	MaxRows int

	// Solver runs the model; nil means mip.NewBranchAndBound().
	Solver mip.Solver

	// ProblemFile, when set, receives the model in LP format before solving.
	ProblemFile string

	// Logger receives progress records; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns no time limit, a zero gap, the node count as bound
// and mip.DefaultMaxRows.
func DefaultOptions() Options {
	return Options{MaxRows: mip.DefaultMaxRows}
}

// Option mutates Options.
type Option func(*Options)

// WithTimeLimit sets the solver time limit.
func WithTimeLimit(d time.Duration) Option { return func(o *Options) { o.TimeLimit = d } }

// WithMIPGap sets the relative optimality gap.
func WithMIPGap(gap float64) Option { return func(o *Options) { o.MIPGap = gap } }

// WithBound sets the big-M constant; 0 restores the node-count default.
func WithBound(m int) Option { return func(o *Options) { o.Bound = m } }

// WithFixedNodes forces the given components onto the row side.
func WithFixedNodes(nodes ...string) Option {
	return func(o *Options) { o.FixedNodes = append(o.FixedNodes, nodes...) }
}

// WithCutoffs excludes earlier solutions and their mirrors.
func WithCutoffs(sols ...Solution) Option {
	return func(o *Options) { o.Cutoffs = append(o.Cutoffs, sols...) }
}

// WithMaxRows caps the relaxation size; 0 lifts the cap.
func WithMaxRows(n int) Option { return func(o *Options) { o.MaxRows = n } }

// WithSolver replaces the MIP backend.
func WithSolver(s mip.Solver) Option { return func(o *Options) { o.Solver = s } }

// WithProblemFile writes the LP model to path before each solve.
func WithProblemFile(path string) Option { return func(o *Options) { o.ProblemFile = path } }

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

func (o Options) validate() error {
	if o.Bound < 0 || o.TimeLimit < 0 || o.MIPGap < 0 || o.MaxRows < 0 {
		return ErrBadOptions
	}

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
