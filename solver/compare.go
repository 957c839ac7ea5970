// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/numsolve/matrix"
	"k8s.io/klog/v2"
)

// Outcome is the per-method result of Compare. Exactly one of LU / Result is
// set on success; Err holds a validation or LU failure.
type Outcome struct {
	Method Method
	LU     *LUResult
	Result *Result
	Err    error
}

// Solution returns the computed x, or nil if the method produced none.
func (o Outcome) Solution() []float64 {
	switch {
	case o.LU != nil:
		return o.LU.X
	case o.Result != nil:
		return o.Result.Solution
	default:
		return nil
	}
}

// ResidualNorm returns ‖A·x − b‖₂ of the computed x, or 0 when there is none.
func (o Outcome) ResidualNorm() float64 {
	switch {
	case o.LU != nil:
		return o.LU.ResidualNorm
	case o.Result != nil:
		return o.Result.ResidualNorm
	default:
		return 0
	}
}

// Compare runs SolveLU, Jacobi and SOR on the same system with the same options,
// in that order. A failure of one method never prevents the others from running.
func Compare(a matrix.Matrix, b []float64, opts ...Option) []Outcome {
	out := make([]Outcome, 0, 3)

	lu, err := SolveLU(a, b, opts...)
	out = append(out, Outcome{Method: MethodLU, LU: lu, Err: err})

	for _, run := range []struct {
		m  Method
		fn func(matrix.Matrix, []float64, ...Option) (*Result, error)
	}{
		{MethodJacobi, Jacobi},
		{MethodSOR, SOR},
	} {
		res, err := run.fn(a, b, opts...)
		if err == nil {
			err = res.Err()
		}
		out = append(out, Outcome{Method: run.m, Result: res, Err: err})
	}
	klog.V(4).InfoS("compare finished", "methods", len(out))

	return out
}
