// SPDX-License-Identifier: MIT

// Package matrix - LU factorization kernels and triangular substitution.
//
// Purpose:
//   - LU:  Doolittle elimination without row exchanges, A = L·U.
//   - LUP: elimination with partial (row) pivoting, P·A = L·U.
//   - ForwardSubst / BackSubst: solve L·y = c and U·x = y.
//
// Determinism:
//   - Fixed i→j loop orders; ties in the pivot search resolve to the lowest row.
//
// Notes:
//   - Every kernel works on a private copy of A and allocates fresh L and U;
//     caller data is never aliased.
//   - A pivot with |p| <= tol is reported as *PivotError (unwraps to ErrZeroPivot)
//     instead of being divided by.

package matrix

import (
	"fmt"
	"math"
)

// LU computes A = L·U with unit diagonal on L and no row exchanges.
// Implementation:
//   - Stage 1: Validate a (not nil, square); clone A into U; L = I.
//   - Stage 2: For i=0..n-1 check the pivot U[i,i], then eliminate below it
//     with factor U[j,i]/U[i,i] stored in L[j,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - *PivotError (ErrZeroPivot) the first time |U[i,i]| <= tol.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(a Matrix, tol float64) (*Dense, *Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := asDense(a) // working copy; mutated freely below
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := U.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var pivot, f float64
	for i = 0; i < n; i++ {
		pivot = U.data[i*n+i]
		if IsZero(pivot, tol) {
			return nil, nil, matrixErrorf(opLU, &PivotError{Step: i, Value: pivot})
		}
		for j = i + 1; j < n; j++ {
			f = U.data[j*n+i] / pivot
			L.data[j*n+i] = f
			U.data[j*n+i] = 0 // exact zero below the diagonal
			for k = i + 1; k < n; k++ {
				U.data[j*n+k] -= f * U.data[i*n+k]
			}
		}
	}

	return L, U, nil
}

// LUP computes P·A = L·U with partial pivoting.
// Implementation:
//   - Stage 1: Validate a; clone into U; perm = identity; L = 0.
//   - Stage 2: For each column i pick the row p ≥ i with the largest |U[p,i]|,
//     swap rows i↔p in U, in the already built part of L, and in perm.
//   - Stage 3: Eliminate below the pivot; finally set diag(L) = 1.
//
// Returns:
//   - perm: row order such that (P·A)[i,*] = A[perm[i],*].
//   - L (unit lower), U (upper).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - *PivotError when even the largest candidate has |p| <= tol (A is singular).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP(a Matrix, tol float64) ([]int, *Dense, *Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	U, err := asDense(a)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	n := U.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, v, pivot, f float64
	for i = 0; i < n; i++ {
		// Pivot search: first row with the largest magnitude in column i.
		p, best = i, math.Abs(U.data[i*n+i])
		for j = i + 1; j < n; j++ {
			if v = math.Abs(U.data[j*n+i]); v > best {
				p, best = j, v
			}
		}
		if p != i {
			swapRows(U, i, p)
			swapRows(L, i, p) // only columns < i are populated yet
			perm[i], perm[p] = perm[p], perm[i]
		}

		pivot = U.data[i*n+i]
		if IsZero(pivot, tol) {
			return nil, nil, nil, matrixErrorf(opLUP, &PivotError{Step: i, Value: pivot})
		}
		for j = i + 1; j < n; j++ {
			f = U.data[j*n+i] / pivot
			L.data[j*n+i] = f
			U.data[j*n+i] = 0
			for k = i + 1; k < n; k++ {
				U.data[j*n+k] -= f * U.data[i*n+k]
			}
		}
	}
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	return perm, L, U, nil
}

// swapRows exchanges rows i and p of a square Dense in place.
func swapRows(m *Dense, i, p int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rp := m.data[p*m.c : (p+1)*m.c]
	for j := range ri {
		ri[j], rp[j] = rp[j], ri[j]
	}
}

// ForwardSubst solves L·y = c for unit lower-triangular L.
// Entries above the diagonal and the diagonal itself are not read.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(n^2).
func ForwardSubst(L Matrix, c []float64) ([]float64, error) {
	if err := ValidateSystem(L, c); err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	ld, err := asDense(L)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	n := ld.r
	y := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += ld.data[i*n+k] * y[k]
		}
		y[i] = c[i] - sum
	}

	return y, nil
}

// BackSubst solves U·x = y for upper-triangular U.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch,
// *PivotError when a diagonal entry satisfies |U[i,i]| <= tol.
// Complexity: O(n^2).
func BackSubst(U Matrix, y []float64, tol float64) ([]float64, error) {
	if err := ValidateSystem(U, y); err != nil {
		return nil, matrixErrorf(opBackward, err)
	}
	ud, err := asDense(U)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}
	n := ud.r
	x := make([]float64, n)
	var i, k int
	var sum, d float64
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += ud.data[i*n+k] * x[k]
		}
		d = ud.data[i*n+i]
		if IsZero(d, tol) {
			return nil, matrixErrorf(opBackward, &PivotError{Step: i, Value: d})
		}
		x[i] = (y[i] - sum) / d
	}

	return x, nil
}

// Solve returns x with a·x = b using LUP, forward and back substitution.
// It is the dense direct solve used wherever a one-shot linear solve is
// needed (e.g. the Newton step J·Δ = −F).
//
// Errors: those of LUP/ForwardSubst/BackSubst; a zero pivot means a is singular.
// Complexity: O(n^3).
func Solve(a Matrix, b []float64, tol float64) ([]float64, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	perm, L, U, err := LUP(a, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	pb, err := Permute(perm, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	y, err := ForwardSubst(L, pb)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := BackSubst(U, y, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	for i, v := range x {
		if isNonFinite(v) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("x[%d]=%g: %w", i, v, ErrNaNInf))
		}
	}

	return x, nil
}
