// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numsolve/matrix"
)

// Method names a solver. The string form is used in logs, errors and reports.
type Method string

const (
	MethodLU          Method = "lu"
	MethodJacobi      Method = "jacobi"
	MethodSOR         Method = "sor"
	MethodGaussSeidel Method = "gauss-seidel"
	MethodNewton      Method = "newton"
)

// StatusKind classifies how a solver run ended.
type StatusKind int

const (
	// StatusConverged: the stopping criterion was met within the budget.
	StatusConverged StatusKind = iota + 1
	// StatusNotConverged: the budget ran out. Not an error; the last iterate is returned.
	StatusNotConverged
	// StatusFailed: a fatal numerical failure stopped the run; Status.Err explains it.
	StatusFailed
)

func (k StatusKind) String() string {
	switch k {
	case StatusConverged:
		return "converged"
	case StatusNotConverged:
		return "not-converged"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
}

// Criterion tells which test stopped a converged run.
type Criterion int

const (
	CriterionNone     Criterion = iota
	CriterionResidual           // ‖r‖ < tolerance
	CriterionStep               // ‖x_{k+1} − x_k‖∞ < tolerance (Newton only)
)

func (c Criterion) String() string {
	switch c {
	case CriterionResidual:
		return "residual"
	case CriterionStep:
		return "step"
	default:
		return "none"
	}
}

// Status is the terminal state of an iterative run.
type Status struct {
	Kind      StatusKind
	Criterion Criterion // set when Kind == StatusConverged
	Err       error     // *NumericalError when Kind == StatusFailed
}

func (s Status) String() string {
	switch s.Kind {
	case StatusConverged:
		return fmt.Sprintf("%s (%s)", s.Kind, s.Criterion)
	case StatusFailed:
		return fmt.Sprintf("%s: %v", s.Kind, s.Err)
	default:
		return s.Kind.String()
	}
}

// Dominance records the informational diagonal-dominance check.
type Dominance int

const (
	DominanceUnchecked Dominance = iota
	DominanceStrict
	DominanceNotStrict
)

func (d Dominance) String() string {
	switch d {
	case DominanceStrict:
		return "strictly diagonally dominant"
	case DominanceNotStrict:
		return "not strictly diagonally dominant; convergence is not guaranteed"
	default:
		return "unchecked"
	}
}

// HistoryEntry is one row of the convergence history. Entry 0 holds the
// initial state. Every slice is a private snapshot; later iterations never
// alter an entry already recorded.
type HistoryEntry struct {
	Iteration    int
	X            []float64     // linear: iterate after the sweep; Newton: the point x_k the step starts from
	Residual     []float64     // A·X − b (linear) or F(X) (Newton); nil if F failed
	ResidualNorm float64       // ‖Residual‖₂; NaN if F failed
	Jacobian     *matrix.Dense // Newton only: J(X)
	Step         []float64     // linear: x_k − x_{k−1}; Newton: solved Δ_k (before damping); nil for entry 0
	StepNorm     float64       // linear: ‖x_k − x_{k−1}‖∞; Newton: ‖x_{k+1} − x_k‖∞; 0 if no step
}

// HasStep reports whether the entry carries a step.
func (e HistoryEntry) HasStep() bool { return e.Step != nil }

// Result is the outcome of an iterative solve. On StatusFailed it still holds
// the history up to the failure and the last complete iterate.
type Result struct {
	Method       Method
	Solution     []float64
	Iterations   int // completed iterations (not counting entry 0)
	ResidualNorm float64
	Status       Status
	History      []HistoryEntry
	Dominance    Dominance // Jacobi only
	Tolerance    float64
	Relaxation   float64 // SOR / Newton; 0 otherwise
}

// Converged reports whether the run met its stopping criterion.
func (r *Result) Converged() bool { return r != nil && r.Status.Kind == StatusConverged }

// Err returns the fatal error of a failed run, or nil.
func (r *Result) Err() error {
	if r == nil || r.Status.Kind != StatusFailed {
		return nil
	}

	return r.Status.Err
}

// Last returns the most recent history entry.
func (r *Result) Last() HistoryEntry {
	if r == nil || len(r.History) == 0 {
		return HistoryEntry{ResidualNorm: math.NaN()}
	}

	return r.History[len(r.History)-1]
}

// LUResult carries the direct solve and every intermediate artifact.
// Without pivoting P is the identity, Perm is 0..n-1 and PermutedB equals b.
type LUResult struct {
	Pivoted      bool
	Perm         []int
	P, L, U      *matrix.Dense
	PermutedB    []float64 // P·b
	Y            []float64 // L·y = P·b
	X            []float64 // U·x = y
	ResidualNorm float64   // ‖A·x − b‖₂
}

// VectorFunc evaluates F at x. x is a private copy.
type VectorFunc func(x []float64) ([]float64, error)

// JacobianFunc evaluates J at x. x is a private copy.
type JacobianFunc func(x []float64) (matrix.Matrix, error)
