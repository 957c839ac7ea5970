// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Single source of truth for the tolerances used by pivot guards and the
//     determinant-based singularity check.
//
// Notes:
//   - DefaultPivotTolerance mirrors the absolute tolerance of a classic
//     "isclose(x, 0)" test; it guards every division by a pivot or a diagonal.
//   - DefaultSingularThreshold is deliberately much tighter: a matrix may pass
//     the global determinant check and still expose a zero pivot/diagonal.
package matrix

import "math"

const (
	// DefaultPivotTolerance is the absolute tolerance under which a pivot or a
	// diagonal divisor is treated as zero.
	DefaultPivotTolerance = 1e-8

	// DefaultSingularThreshold is the |det(A)| bound below which A is singular.
	DefaultSingularThreshold = 1e-12
)

// IsZero reports whether |v| <= tol (NaN is never zero).
// Complexity: O(1).
func IsZero(v, tol float64) bool {
	return math.Abs(v) <= tol
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
