// SPDX-License-Identifier: MIT

package solver

import (
	"errors"

	"github.com/katalvlaran/numsolve/matrix"
	"k8s.io/klog/v2"
)

// SolveLU solves A·x = b by LU factorization.
//
// Implementation:
//   - Stage 1: Validate (square A, len(b) = n, finite b, |det A| ≥ singular threshold).
//   - Stage 2: Factor. With pivoting (default): P·A = L·U. Without: A = L·U and P = I.
//   - Stage 3: Forward substitution L·y = P·b, then back substitution U·x = y.
//
// Options: WithPivoting, WithPivotTolerance, WithSingularThreshold.
//
// Errors:
//   - *ValidationError for bad input (wraps matrix.ErrNonSquare, matrix.ErrSingular, ...).
//   - *NumericalError wrapping ErrZeroPivot when a pivot is numerically zero.
//     Without pivoting this happens on matrices that pass the determinant check,
//     e.g. [[0,1],[1,1]]. Row is the elimination step.
//
// Complexity: O(n^3) time, O(n^2) memory.
func SolveLU(a matrix.Matrix, b []float64, opts ...Option) (*LUResult, error) {
	o := gatherOptions(opts...)
	lp, err := prepareLinear(MethodLU, a, b, o, false)
	if err != nil {
		return nil, err
	}
	n := len(lp.b)

	var perm []int
	var L, U *matrix.Dense
	if o.pivoting {
		perm, L, U, err = matrix.LUP(lp.a, o.pivotTolerance)
	} else {
		L, U, err = matrix.LU(lp.a, o.pivotTolerance)
		perm = identityPerm(n)
	}
	if err != nil {
		return nil, pivotFailure(err)
	}

	res := &LUResult{Pivoted: o.pivoting, Perm: perm, L: L, U: U}
	if res.P, err = matrix.PermutationMatrix(perm); err != nil {
		return nil, err
	}
	if res.PermutedB, err = matrix.Permute(perm, lp.b); err != nil {
		return nil, err
	}
	if res.Y, err = matrix.ForwardSubst(L, res.PermutedB); err != nil {
		return nil, err
	}
	if res.X, err = matrix.BackSubst(U, res.Y, o.pivotTolerance); err != nil {
		return nil, pivotFailure(err)
	}
	if err = matrix.ValidateFinite(res.X); err != nil {
		return nil, &NumericalError{Method: MethodLU, Iteration: -1, Row: -1, Err: ErrDiverged, Cause: err}
	}

	r, err := matrix.Residual(lp.a, res.X, lp.b)
	if err != nil {
		return nil, err
	}
	res.ResidualNorm = matrix.Norm2(r)
	klog.V(4).InfoS("LU solve finished", "n", n, "pivoting", o.pivoting, "perm", perm, "residual", res.ResidualNorm)

	return res, nil
}

// pivotFailure converts a kernel pivot error into a *NumericalError carrying the step.
func pivotFailure(err error) error {
	ne := &NumericalError{Method: MethodLU, Iteration: -1, Row: -1, Err: ErrZeroPivot}
	var pe *matrix.PivotError
	if errors.As(err, &pe) {
		ne.Row = pe.Step
		klog.V(4).InfoS("LU zero pivot", "step", pe.Step, "value", pe.Value)
		return ne
	}
	ne.Cause = err

	return ne
}

func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
