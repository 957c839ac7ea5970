// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - A NaN element is never close to anything.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Dense fast-path over flat slices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeTo(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // bounds ensured by shape check
			bv, _ = b.At(i, j)
			if !closeTo(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// VecAllClose is the vector counterpart of AllClose.
//
// Errors: ErrDimensionMismatch when lengths differ, ErrNaNInf for bad tolerances.
func VecAllClose(a, b []float64, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if len(a) != len(b) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range a {
		if !closeTo(a[i], b[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

func closeTo(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
