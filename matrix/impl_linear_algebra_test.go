// SPDX-License-Identifier: MIT
// Package matrix_test: products, residuals, determinant, norms, permutations.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestMatVec_FastPath_MatchesFallback compares the *Dense fast path with the interface path.
func TestMatVec_FastPath_MatchesFallback(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	fast, err := matrix.MatVec(A, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, fast)

	slow, err := matrix.MatVec(hide{A}, x)
	require.NoError(t, err)
	require.Equal(t, fast, slow)
}

// TestMatVec_Errors covers nil and length mismatch.
func TestMatVec_Errors(t *testing.T) {
	_, err := matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(MustDense(t, 2, 3), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul covers the product, a fallback operand and inner-dimension mismatch.
func TestMul(t *testing.T) {
	A := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	B := MustRows(t, [][]float64{{1, 0, 2}, {0, 1, 3}})

	C, err := matrix.Mul(A, hide{B})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 8}, {3, 4, 18}, {5, 6, 28}}, C.ToRows())

	_, err = matrix.Mul(A, A)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, B)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResidual checks r = A·x − b and zero for the exact solution.
func TestResidual(t *testing.T) {
	A := MustRows(t, lu3)

	r, err := matrix.Residual(A, lu3x, lu3b)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0}, r)

	r, err = matrix.Residual(A, []float64{0, 0, 0}, lu3b)
	require.NoError(t, err)
	require.Equal(t, []float64{-3, -4, 2}, r)

	_, err = matrix.Residual(A, lu3x, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDet checks known determinants and the shape contract.
func TestDet(t *testing.T) {
	d, err := matrix.Det(MustRows(t, lu3))
	require.NoError(t, err)
	require.InDelta(t, -6.0, d, 1e-12)

	d, err = matrix.Det(hide{MustRows(t, zeroLead)})
	require.NoError(t, err)
	require.InDelta(t, -1.0, d, 1e-15)

	_, err = matrix.Det(MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestNorms covers the Euclidean norm, the infinity norm and the empty vector.
func TestNorms(t *testing.T) {
	require.Equal(t, 5.0, matrix.Norm2([]float64{3, -4}))
	require.Equal(t, 4.0, matrix.NormInf([]float64{3, -4}))
	require.Equal(t, 2.0, matrix.DistInf([]float64{1, 5}, []float64{2, 3}))
	require.Zero(t, matrix.Norm2(nil))
	require.Zero(t, matrix.NormInf(nil))
}

// TestPermutation checks P·v == Permute(perm, v) and invalid permutations.
func TestPermutation(t *testing.T) {
	perm := []int{2, 0, 1}
	v := []float64{10, 20, 30}

	P, err := matrix.PermutationMatrix(perm)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, P.ToRows())

	pv, err := matrix.MatVec(P, v)
	require.NoError(t, err)
	got, err := matrix.Permute(perm, v)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 10, 20}, got)
	require.Equal(t, pv, got)

	_, err = matrix.PermutationMatrix([]int{0, 0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.PermutationMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Permute([]int{0, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAllClose covers tolerance semantics, shapes and NaN handling.
func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1 + 1e-10, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, hide{b}, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	ok, err = matrix.VecAllClose([]float64{math.NaN()}, []float64{math.NaN()}, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}
