// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numsolve/matrix"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"
)

// Newton solves F(x) = 0 with the damped Newton-Raphson method.
//
// Implementation:
//   - Stage 1: Validate (non-nil F and J, finite non-empty x₀, tolerance, budget, w > 0).
//   - Stage 2: Evaluate F(x₀) and record entry 0. A residual already below
//     tolerance converges with zero iterations.
//   - Stage 3: For k = 1..max, with x_k the current point:
//     if k > 1 and ‖F(x_k)‖₂ < tol, record a closing entry (x_k, F(x_k)) and
//     stop (criterion residual); otherwise solve J(x_k)·Δ_k = −F(x_k), move
//     x_{k+1} = x_k + w·Δ_k, record (x_k, F(x_k), J(x_k), Δ_k, ‖x_{k+1} − x_k‖∞)
//     and stop when that step norm is below tol (criterion step).
//
// Every history entry describes a single point: X, Residual and Jacobian all
// belong to the same x_k.
//
// Singularity: a pivot of J is treated as zero when |p| ≤ pivotTolerance·max|J_ij|,
// so the test scales with J and a uniformly tiny Jacobian is still solvable.
//
// Failures (Status Failed, history kept up to the failure):
//   - ErrSingularJacobian: J_k·Δ = −F has no stable solution; a partial entry
//     with J_k and without Δ is recorded.
//   - ErrFunctionFailure: F or J returned an error, panicked, or produced NaN/Inf
//     or a wrong shape. If F fails at a new point, a partial entry with that
//     point and a NaN residual is recorded and the previous point is returned.
//
// The reported ResidualNorm is ‖F‖₂ at the returned Solution.
//
// Options: WithTolerance, WithMaxIterations, WithRelaxation (damping factor),
// WithPivotTolerance. WithInitialGuess is ignored; pass x₀ explicitly.
func Newton(f VectorFunc, j JacobianFunc, x0 []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validateNewton(f, j, x0, o); err != nil {
		return nil, validationErrorf(MethodNewton, err)
	}

	n := len(x0)
	res := &Result{Method: MethodNewton, Tolerance: o.tolerance, Relaxation: o.relaxation}
	res.History = make([]HistoryEntry, 0, historyCap(o.maxIterations))
	x := matrix.CloneVector(x0)

	fx, err := evalF(f, x, n)
	if err != nil {
		res.History = append(res.History, HistoryEntry{Iteration: 0, X: matrix.CloneVector(x), ResidualNorm: math.NaN()})
		return res.fail(x, 0, &NumericalError{Method: MethodNewton, Iteration: 0, Row: -1, Err: ErrFunctionFailure, Cause: err}), nil
	}
	norm := matrix.Norm2(fx)
	res.History = append(res.History, HistoryEntry{Iteration: 0, X: matrix.CloneVector(x), Residual: fx, ResidualNorm: norm})
	if norm < o.tolerance {
		return res.finish(x, 0, norm, Status{Kind: StatusConverged, Criterion: CriterionResidual}), nil
	}

	rhs := make([]float64, n)
	var jx *matrix.Dense
	var delta, xn, fxn []float64
	var step float64
	for k := 1; k <= o.maxIterations; k++ {
		if k > 1 && norm < o.tolerance {
			res.History = append(res.History, HistoryEntry{Iteration: k, X: matrix.CloneVector(x), Residual: matrix.CloneVector(fx), ResidualNorm: norm})
			return res.finish(x, k, norm, Status{Kind: StatusConverged, Criterion: CriterionResidual}), nil
		}

		if jx, err = evalJ(j, x, n); err != nil {
			res.History = append(res.History, HistoryEntry{Iteration: k, X: matrix.CloneVector(x), Residual: matrix.CloneVector(fx), ResidualNorm: norm})
			return res.fail(x, k-1, &NumericalError{Method: MethodNewton, Iteration: k, Row: -1, Err: ErrFunctionFailure, Cause: err}), nil
		}

		floats.ScaleTo(rhs, -1, fx)
		if delta, err = matrix.Solve(jx, rhs, jacobianPivotTolerance(jx, o.pivotTolerance)); err != nil {
			res.History = append(res.History, HistoryEntry{Iteration: k, X: matrix.CloneVector(x), Residual: matrix.CloneVector(fx), ResidualNorm: norm, Jacobian: jx})
			return res.fail(x, k-1, &NumericalError{Method: MethodNewton, Iteration: k, Row: -1, Err: ErrSingularJacobian, Cause: err}), nil
		}

		xn = make([]float64, n)
		floats.AddScaledTo(xn, x, o.relaxation, delta)
		step = matrix.DistInf(xn, x)
		res.History = append(res.History, HistoryEntry{
			Iteration:    k,
			X:            matrix.CloneVector(x),
			Residual:     matrix.CloneVector(fx),
			ResidualNorm: norm,
			Jacobian:     jx,
			Step:         delta,
			StepNorm:     step,
		})
		klog.V(5).InfoS("iteration", "method", MethodNewton, "k", k, "residual", norm, "step", step)

		if fxn, err = evalF(f, xn, n); err != nil {
			res.History = append(res.History, HistoryEntry{Iteration: k + 1, X: xn, ResidualNorm: math.NaN()})
			return res.fail(x, k, &NumericalError{Method: MethodNewton, Iteration: k + 1, Row: -1, Err: ErrFunctionFailure, Cause: err}), nil
		}
		x, fx, norm = xn, fxn, matrix.Norm2(fxn)

		if step < o.tolerance {
			return res.finish(x, k, norm, Status{Kind: StatusConverged, Criterion: CriterionStep}), nil
		}
	}

	return res.finish(x, o.maxIterations, norm, Status{Kind: StatusNotConverged}), nil
}

// jacobianPivotTolerance scales tol by the largest |J_ij|. An all-zero J
// yields 0, which still rejects every zero pivot.
func jacobianPivotTolerance(jx *matrix.Dense, tol float64) float64 {
	var scale float64
	for _, row := range jx.ToRows() {
		scale = max(scale, matrix.NormInf(row))
	}

	return tol * scale
}

func validateNewton(f VectorFunc, j JacobianFunc, x0 []float64, o Options) error {
	if f == nil || j == nil {
		return ErrNilFunction
	}
	if err := o.validateIterative(true); err != nil {
		return err
	}
	if len(x0) == 0 {
		return fmt.Errorf("empty: %w", ErrBadInitialGuess)
	}
	if err := matrix.ValidateFinite(x0); err != nil {
		return fmt.Errorf("%w: %w", ErrBadInitialGuess, err)
	}

	return nil
}

// evalF calls F on a private copy of x and checks its output.
// A panic inside F is converted into an error.
func evalF(f VectorFunc, x []float64, n int) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("F panicked: %v", r)
		}
	}()

	v, err := f(matrix.CloneVector(x))
	if err != nil {
		return nil, fmt.Errorf("F: %w", err)
	}
	if len(v) != n {
		return nil, fmt.Errorf("F returned %d values, want %d: %w", len(v), n, matrix.ErrDimensionMismatch)
	}
	if err = matrix.ValidateFinite(v); err != nil {
		return nil, fmt.Errorf("F: %w", err)
	}

	return matrix.CloneVector(v), nil
}

// evalJ calls J on a private copy of x and returns an owned n×n finite copy.
func evalJ(j JacobianFunc, x []float64, n int) (out *matrix.Dense, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("J panicked: %v", r)
		}
	}()

	m, err := j(matrix.CloneVector(x))
	if err != nil {
		return nil, fmt.Errorf("J: %w", err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("J: %w", err)
	}
	if m.Rows() != n {
		return nil, fmt.Errorf("J is %dx%d, want %dx%d: %w", m.Rows(), m.Cols(), n, n, matrix.ErrDimensionMismatch)
	}
	d, err := matrix.ToDense(m)
	if err != nil {
		return nil, fmt.Errorf("J: %w", err)
	}
	for _, row := range d.ToRows() {
		if err = matrix.ValidateFinite(row); err != nil {
			return nil, fmt.Errorf("J: %w", err)
		}
	}

	return d, nil
}
