// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for vector bookkeeping shared by solvers.
//   - Avoid logic duplication: facades only allocate and copy.

package matrix

// ZeroVector returns a fresh zero vector of length n (nil for n <= 0).
// Complexity: O(n).
func ZeroVector(n int) []float64 {
	if n <= 0 {
		return nil
	}

	return make([]float64, n)
}

// CloneVector returns an independent copy of v (nil stays nil).
// Complexity: O(n).
func CloneVector(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// ToDense returns an independent *Dense copy of any Matrix implementation.
//
// Errors: ErrNilMatrix, or the first At error of a foreign implementation.
// Complexity: O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return asDense(m)
}
