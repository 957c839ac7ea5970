// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the typed pivot
// error used across the matrix package. All kernels MUST return these
// sentinels (possibly wrapped) and tests MUST check them via errors.Is.
// No kernel should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// outer caller still matches with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> vector length -> NaN/Inf -> singularity -> pivot.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row-slice literal is empty or ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix or nil vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(b) != Rows(A) or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when |det(A)| falls below the singularity threshold.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroPivot is returned when an elimination step meets a pivot that is
	// numerically zero (|p| <= pivot tolerance).
	ErrZeroPivot = errors.New("matrix: zero pivot")
)

// PivotError reports the elimination step (row/column index) at which a
// zero pivot was met. It unwraps to ErrZeroPivot.
type PivotError struct {
	Step  int     // zero-based elimination step == pivot row
	Value float64 // offending pivot value
}

// Error implements the error interface.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%v at step %d (value %g)", ErrZeroPivot, e.Step, e.Value)
}

// Unwrap exposes ErrZeroPivot to errors.Is.
func (e *PivotError) Unwrap() error { return ErrZeroPivot }
