// SPDX-License-Identifier: MIT
// Package matrix provides the numeric kernels shared by every solver:
// matrix-vector and matrix-matrix products, residuals, determinants,
// vector norms and permutations. All functions perform strict fail-fast
// validation and return wrapped sentinels on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates its result.
//   - Norms and the determinant delegate to gonum (floats, mat) so the numeric
//     policy matches a well-tested reference implementation.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ZeroSum is the initial sum value for substitution and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opResidual    = "Residual"
	opDet         = "Det"
	opPermutation = "PermutationMatrix"
	opPermute     = "Permute"
	opLU          = "LU"
	opLUP         = "LUP"
	opForward     = "ForwardSubst"
	opBackward    = "BackSubst"
	opSolve       = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i→k→j order keeps the inner loop on contiguous rows of B and C.
	var i, j, k int
	var aik float64
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// Residual returns r = a·x − b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n^2).
func Residual(a Matrix, x, b []float64) ([]float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return nil, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return nil, matrixErrorf(opResidual, err)
	}

	return floats.SubTo(ax, ax, b), nil // in-place on the fresh product
}

// Det computes det(m) through gonum's LU-based determinant.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n^3).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return mat.Det(mat.NewDense(d.r, d.c, d.data)), nil
}

// Norm2 returns the Euclidean norm ‖v‖₂.
func Norm2(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, 2)
}

// NormInf returns the infinity norm max_i |v_i|.
func NormInf(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, math.Inf(1))
}

// DistInf returns ‖a − b‖∞. Lengths must match (caller contract).
func DistInf(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}

	return floats.Distance(a, b, math.Inf(1))
}

// PermutationMatrix builds P with P[i, perm[i]] = 1, so (P·v)[i] = v[perm[i]].
//
// Errors: ErrInvalidDimensions (empty), ErrOutOfRange (entry outside 0..n-1 or repeated).
func PermutationMatrix(perm []int) (*Dense, error) {
	n := len(perm)
	P, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, matrixErrorf(opPermutation, fmt.Errorf("perm[%d]=%d: %w", i, p, ErrOutOfRange))
		}
		seen[p] = true
		P.data[i*n+p] = 1.0
	}

	return P, nil
}

// Permute returns out[i] = v[perm[i]] (the product P·v without building P).
//
// Errors: ErrDimensionMismatch when lengths differ.
func Permute(perm []int, v []float64) ([]float64, error) {
	if err := ValidateVecLen(v, len(perm)); err != nil {
		return nil, matrixErrorf(opPermute, err)
	}
	out := make([]float64, len(v))
	for i, p := range perm {
		if p < 0 || p >= len(v) {
			return nil, matrixErrorf(opPermute, fmt.Errorf("perm[%d]=%d: %w", i, p, ErrOutOfRange))
		}
		out[i] = v[p]
	}

	return out, nil
}
