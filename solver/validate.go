// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/numsolve/matrix"
)

// linearProblem is the validated, privately owned form of A·x = b.
type linearProblem struct {
	a    *matrix.Dense
	rows [][]float64 // row view of a for the sweep kernels
	b    []float64
	x0   []float64 // nil for the direct solve
}

// prepareLinear runs the checks shared by every linear solver, in order:
// options → shape (square, len(b), finite b) → |det(A)| → initial guess.
// Inputs are copied; the caller's A, b and x₀ are never touched again.
func prepareLinear(m Method, a matrix.Matrix, b []float64, o Options, iterative bool) (*linearProblem, error) {
	var err error
	if iterative {
		err = o.validateIterative(m == MethodSOR || m == MethodGaussSeidel)
	} else {
		err = o.validateNumeric()
	}
	if err != nil {
		return nil, validationErrorf(m, err)
	}
	if err = matrix.ValidateSystem(a, b); err != nil {
		return nil, validationErrorf(m, err)
	}
	if err = matrix.ValidateNonSingular(a, o.singularThreshold); err != nil {
		return nil, validationErrorf(m, err)
	}

	ad, err := matrix.ToDense(a)
	if err != nil {
		return nil, validationErrorf(m, err)
	}
	lp := &linearProblem{a: ad, rows: ad.ToRows(), b: matrix.CloneVector(b)}
	if !iterative {
		return lp, nil
	}

	n := len(b)
	switch {
	case o.initialGuess == nil:
		lp.x0 = matrix.ZeroVector(n)
	case len(o.initialGuess) != n:
		return nil, validationErrorf(m, fmt.Errorf("len %d, want %d: %w", len(o.initialGuess), n, ErrBadInitialGuess))
	default:
		if err = matrix.ValidateFinite(o.initialGuess); err != nil {
			return nil, validationErrorf(m, fmt.Errorf("%w: %w", ErrBadInitialGuess, err))
		}
		lp.x0 = matrix.CloneVector(o.initialGuess)
	}

	return lp, nil
}

// historyCap bounds the up-front history allocation for large budgets.
func historyCap(maxIter int) int {
	const limit = 1024
	if maxIter+1 > limit {
		return limit
	}

	return maxIter + 1
}
