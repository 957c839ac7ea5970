// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks every solver
//    runs before touching data: nil, square, vector length, finiteness,
//    determinant-based singularity, diagonal dominance.
//  - Return wrapped sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidateNonSingular allocates
//    (one gonum copy for the determinant).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → VecLen).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateSameShape ensures a and b have identical dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects vectors holding NaN or ±Inf.
// Time: O(n).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSystem is the composite shape check for A·x = b:
// NotNil(A) → Square(A) → len(b) == n → finite(b).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n).
func ValidateSystem(a Matrix, b []float64) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateFinite(b); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}

// ValidateNonSingular reports ErrSingular when |det(a)| < threshold.
// The matrix must already be square.
//
// Complexity: O(n^3) (LU-based determinant).
func ValidateNonSingular(a Matrix, threshold float64) error {
	det, err := Det(a)
	if err != nil {
		return validatorErrorf("ValidateNonSingular", err)
	}
	if math.IsNaN(det) || math.Abs(det) < threshold {
		return validatorErrorf("ValidateNonSingular", fmt.Errorf("|det|=%g < %g: %w", math.Abs(det), threshold, ErrSingular))
	}

	return nil
}

// IsDiagonallyDominant reports whether every row satisfies
// |a_ii| > Σ_{j≠i} |a_ij| (strict row dominance).
// Non-square input is never dominant.
//
// Complexity: O(n^2).
func IsDiagonallyDominant(a Matrix) bool {
	if a == nil || a.Rows() != a.Cols() {
		return false
	}
	n := a.Rows()
	var i, j int
	var diag, off, v float64
	for i = 0; i < n; i++ {
		off = 0
		for j = 0; j < n; j++ {
			v, _ = a.At(i, j) // indices are in range by construction
			if i == j {
				diag = math.Abs(v)
				continue
			}
			off += math.Abs(v)
		}
		if diag <= off { // strict dominance requires >
			return false
		}
	}

	return true
}
