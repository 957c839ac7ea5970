// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numsolve/matrix"
)

// Sentinel errors. Validation sentinels are returned wrapped in *ValidationError;
// numerical sentinels travel inside *NumericalError on Result.Status.Err (or as
// the error return of SolveLU, which has no partial result).
var (
	// ErrBadTolerance indicates a tolerance that is not positive and finite.
	ErrBadTolerance = errors.New("solver: tolerance must be positive and finite")

	// ErrBadMaxIterations indicates a non-positive iteration budget.
	ErrBadMaxIterations = errors.New("solver: max iterations must be positive")

	// ErrBadRelaxation indicates a relaxation/damping factor that is not positive and finite.
	ErrBadRelaxation = errors.New("solver: relaxation factor must be positive and finite")

	// ErrBadInitialGuess indicates an initial guess of the wrong length or with NaN/Inf.
	ErrBadInitialGuess = errors.New("solver: invalid initial guess")

	// ErrNilFunction indicates a nil F or J passed to Newton.
	ErrNilFunction = errors.New("solver: nil function")

	// ErrZeroDiagonal indicates a numerically zero diagonal divisor met mid-iteration.
	ErrZeroDiagonal = errors.New("solver: zero diagonal element")

	// ErrZeroPivot indicates a numerically zero pivot met during LU factorization.
	// It is the matrix package sentinel, so either name matches with errors.Is.
	ErrZeroPivot = matrix.ErrZeroPivot

	// ErrDiverged indicates that an iterate overflowed to NaN/Inf.
	ErrDiverged = errors.New("solver: iterates diverged to NaN/Inf")

	// ErrSingularJacobian indicates that J·Δ = −F could not be solved.
	ErrSingularJacobian = errors.New("solver: singular jacobian")

	// ErrFunctionFailure indicates that a caller-supplied F or J failed
	// (returned an error, panicked, produced NaN/Inf or a wrong shape).
	ErrFunctionFailure = errors.New("solver: caller function failed")
)

// ValidationError is returned before any computation starts; no partial
// result accompanies it.
type ValidationError struct {
	Method Method
	Err    error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validation: %v", e.Method, e.Err)
}

// Unwrap exposes the underlying sentinel (solver or matrix package).
func (e *ValidationError) Unwrap() error { return e.Err }

// NumericalError describes a fatal failure met mid-algorithm.
// Iteration is the iteration being computed when the failure happened
// (0 for the initial evaluation, -1 for the direct LU solve); Row is the
// offending row or elimination step, or -1 when the failure is not tied to a row.
type NumericalError struct {
	Method    Method
	Iteration int
	Row       int
	Err       error // one of the numerical sentinels
	Cause     error // optional underlying error (caller function, matrix kernel)
}

// Error implements the error interface.
func (e *NumericalError) Error() string {
	msg := string(e.Method)
	if e.Iteration >= 0 {
		msg += fmt.Sprintf(": iteration %d", e.Iteration)
	}
	if e.Row >= 0 {
		msg += fmt.Sprintf(": row %d", e.Row)
	}
	msg += ": " + e.Err.Error()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is/errors.As.
func (e *NumericalError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}

	return []error{e.Err, e.Cause}
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationErrorf(m Method, err error) error {
	return &ValidationError{Method: m, Err: err}
}
