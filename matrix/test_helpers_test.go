// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the factorization kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numsolve/matrix"
)

// Tolerances shared by the numeric assertions.
const (
	rtol = 1e-9
	atol = 1e-12
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface (non-*Dense) fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from row slices or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error %v, got %v", target, err)
	}
}

// AssertClose fails unless a and b have identical shapes and match element-wise.
func AssertClose(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ:\n%v\nvs\n%v", a, b)
	}
}

// AssertVecClose fails unless a and b match element-wise within tol.
func AssertVecClose(t *testing.T, a, b []float64, tol float64) {
	t.Helper()
	ok, err := matrix.VecAllClose(a, b, 0, tol)
	if err != nil {
		t.Fatalf("VecAllClose: %v", err)
	}
	if !ok {
		t.Fatalf("vectors differ: %v vs %v (tol %g)", a, b, tol)
	}
}

// Fixtures.
var (
	// lu3 factors without pivoting: L=[[1,0,0],[-2,1,0],[3,-1,1]], U=[[2,-3,1],[0,3,4],[0,0,-1]].
	lu3 = [][]float64{
		{2, -3, 1},
		{-4, 9, 2},
		{6, -12, -2},
	}
	lu3b = []float64{3, 4, -2}
	lu3x = []float64{4, 2, 1}

	// zeroLead has a zero leading pivot but det = -1.
	zeroLead = [][]float64{
		{0, 1},
		{1, 1},
	}
)
