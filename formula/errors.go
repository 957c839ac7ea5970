// SPDX-License-Identifier: MIT

package formula

import "errors"

var (
	// ErrNoVariables indicates an empty variable list.
	ErrNoVariables = errors.New("formula: no variables declared")

	// ErrBadVariable indicates an invalid, duplicated or reserved variable name.
	ErrBadVariable = errors.New("formula: invalid variable name")

	// ErrShape indicates that the number of equations or Jacobian entries does
	// not match the number of variables.
	ErrShape = errors.New("formula: shape mismatch")

	// ErrCompile wraps an expression compile error.
	ErrCompile = errors.New("formula: compile error")

	// ErrEvaluate wraps a runtime evaluation error.
	ErrEvaluate = errors.New("formula: evaluation error")

	// ErrNonNumeric indicates a formula whose value is not a number.
	ErrNonNumeric = errors.New("formula: result is not numeric")

	// ErrArity indicates a math function called with the wrong number of arguments.
	ErrArity = errors.New("formula: wrong number of arguments")
)
