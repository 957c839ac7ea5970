// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/numsolve/matrix"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// sweepFunc computes one full update next ← T(prev). It reports the first row
// whose diagonal divisor is numerically zero (ok == false), in which case next
// is garbage and must not be recorded.
type sweepFunc func(a [][]float64, b, prev, next []float64, w, tol float64) (row int, ok bool)

// jacobiSweep: x_i ← (b_i − Σ_{j≠i} a_ij·prev_j) / a_ii, reading only prev.
func jacobiSweep(a [][]float64, b, prev, next []float64, _ float64, tol float64) (int, bool) {
	var i, j int
	var s, d float64
	for i = range a {
		d = a[i][i]
		if matrix.IsZero(d, tol) {
			return i, false
		}
		s = 0
		for j = range a[i] {
			if j != i {
				s += a[i][j] * prev[j]
			}
		}
		next[i] = (b[i] - s) / d
	}

	return -1, true
}

// sorSweep updates next in place, so rows j < i already see their new values:
// x_i ← (1−w)·prev_i + w·(b_i − Σ_{j<i} a_ij·next_j − Σ_{j>i} a_ij·prev_j) / a_ii.
func sorSweep(a [][]float64, b, prev, next []float64, w, tol float64) (int, bool) {
	copy(next, prev)
	var i, j int
	var s, d float64
	for i = range a {
		d = a[i][i]
		if matrix.IsZero(d, tol) {
			return i, false
		}
		s = 0
		for j = range a[i] {
			if j != i {
				s += a[i][j] * next[j]
			}
		}
		next[i] = (1-w)*prev[i] + w*(b[i]-s)/d
	}

	return -1, true
}

// Jacobi solves A·x = b with the Jacobi iteration.
//
// Implementation:
//   - Stage 1: Validate (see SolveLU) plus tolerance, budget and initial guess.
//   - Stage 2: Record entry 0 (x₀, r₀ = A·x₀ − b). Check strict diagonal dominance;
//     the outcome is reported in Result.Dominance and never blocks the run.
//   - Stage 3: For k = 1..max: sweep, record (x_k, r_k, x_k − x_{k−1}); stop when ‖r_k‖₂ < tol.
//
// Returns a Result whose Status is Converged, NotConverged (budget exhausted,
// last iterate returned) or Failed (*NumericalError with ErrZeroDiagonal and
// the offending row, or ErrDiverged). The error return is reserved for
// *ValidationError.
//
// Options: WithTolerance, WithMaxIterations, WithInitialGuess, WithPivotTolerance
// (zero-diagonal guard), WithSingularThreshold.
//
// Complexity: O(k·n^2) time, O(k·n) memory for the history.
func Jacobi(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	return iterate(MethodJacobi, a, b, gatherOptions(opts...), jacobiSweep)
}

// SOR solves A·x = b with successive over-relaxation using factor w
// (WithRelaxation, default 1). w must be > 0; values outside (0, 2) are
// accepted but logged, since SOR does not converge there in general.
// Everything else is as in Jacobi.
func SOR(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if o.relaxation >= 2 {
		klog.V(1).InfoS("relaxation factor outside (0, 2); SOR may diverge", "w", o.relaxation)
	}

	return iterate(MethodSOR, a, b, o, sorSweep)
}

// GaussSeidel is SOR with w fixed at 1. Any WithRelaxation option is overridden.
func GaussSeidel(a matrix.Matrix, b []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	o.relaxation = 1

	return iterate(MethodGaussSeidel, a, b, o, sorSweep)
}

// iterate is the shared stationary-method skeleton.
func iterate(m Method, a matrix.Matrix, b []float64, o Options, sweep sweepFunc) (*Result, error) {
	lp, err := prepareLinear(m, a, b, o, true)
	if err != nil {
		return nil, err
	}

	res := &Result{Method: m, Tolerance: o.tolerance}
	if m == MethodJacobi {
		res.Dominance = DominanceNotStrict
		if matrix.IsDiagonallyDominant(lp.a) {
			res.Dominance = DominanceStrict
		} else {
			klog.V(2).InfoS("matrix is not strictly diagonally dominant", "method", m)
		}
	} else {
		res.Relaxation = o.relaxation
	}

	x := lp.x0
	r, err := matrix.Residual(lp.a, x, lp.b)
	if err != nil {
		return nil, validationErrorf(m, err)
	}
	res.History = make([]HistoryEntry, 0, historyCap(o.maxIterations))
	res.History = append(res.History, HistoryEntry{
		Iteration:    0,
		X:            matrix.CloneVector(x),
		Residual:     r,
		ResidualNorm: matrix.Norm2(r),
	})

	next := make([]float64, len(x))
	var k, row int
	var ok bool
	for k = 1; k <= o.maxIterations; k++ {
		if row, ok = sweep(lp.rows, lp.b, x, next, o.relaxation, o.pivotTolerance); !ok {
			return res.fail(x, k-1, &NumericalError{Method: m, Iteration: k, Row: row, Err: ErrZeroDiagonal}), nil
		}
		if r, err = matrix.Residual(lp.a, next, lp.b); err != nil {
			return nil, validationErrorf(m, err)
		}
		e := HistoryEntry{
			Iteration:    k,
			X:            matrix.CloneVector(next),
			Residual:     r,
			ResidualNorm: matrix.Norm2(r),
			Step:         floats.SubTo(make([]float64, len(x)), next, x),
			StepNorm:     matrix.DistInf(next, x),
		}
		if math.IsNaN(e.ResidualNorm) || math.IsInf(e.ResidualNorm, 0) {
			return res.fail(x, k-1, &NumericalError{Method: m, Iteration: k, Row: -1, Err: ErrDiverged}), nil
		}
		res.History = append(res.History, e)
		x, next = next, x
		klog.V(5).InfoS("iteration", "method", m, "k", k, "residual", e.ResidualNorm, "step", e.StepNorm)

		if e.ResidualNorm < o.tolerance {
			return res.finish(x, k, e.ResidualNorm, Status{Kind: StatusConverged, Criterion: CriterionResidual}), nil
		}
	}

	return res.finish(x, o.maxIterations, res.Last().ResidualNorm, Status{Kind: StatusNotConverged}), nil
}

// finish seals a run: Solution is a private copy of x and norm is the
// residual norm evaluated at x.
func (r *Result) finish(x []float64, iterations int, norm float64, st Status) *Result {
	r.Solution = matrix.CloneVector(x)
	r.Iterations = iterations
	r.ResidualNorm = norm
	r.Status = st
	klog.V(4).InfoS("solve finished", "method", r.Method, "status", st.Kind, "criterion", st.Criterion,
		"iterations", iterations, "residual", r.ResidualNorm)

	return r
}

// fail seals a run that hit a fatal failure; x is the last complete iterate.
func (r *Result) fail(x []float64, completed int, ne *NumericalError) *Result {
	r.Solution = matrix.CloneVector(x)
	r.Iterations = completed
	r.ResidualNorm = lastValidNorm(r.History)
	r.Status = Status{Kind: StatusFailed, Err: ne}
	klog.V(4).InfoS("solve failed", "method", r.Method, "iteration", ne.Iteration, "row", ne.Row, "err", ne)

	return r
}

// lastValidNorm skips a trailing partial entry whose residual could not be evaluated.
func lastValidNorm(h []HistoryEntry) float64 {
	for i := len(h) - 1; i >= 0; i-- {
		if h[i].Residual != nil {
			return h[i].ResidualNorm
		}
	}

	return math.NaN()
}
