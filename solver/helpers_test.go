// SPDX-License-Identifier: MIT

package solver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/solver"
	"github.com/stretchr/testify/require"
)

// Fixtures shared by the solver tests.
var (
	// dominant3: strictly diagonally dominant; exact solution [3, 1, 1].
	dominant3  = [][]float64{{4, -1, 1}, {-1, 4, -2}, {1, -2, 4}}
	dominant3b = []float64{12, -1, 5}
	dominant3x = []float64{3, 1, 1}

	lu3  = [][]float64{{2, -3, 1}, {-4, 9, 2}, {6, -12, -2}}
	lu3b = []float64{3, 4, -2}
	lu3x = []float64{4, 2, 1}

	// zeroLead: det = -1, but a[0][0] = 0.
	zeroLead  = [][]float64{{0, 1}, {1, 1}}
	zeroLeadB = []float64{1, 2}

	// oscillating: not dominant; Jacobi and SOR blow up.
	oscillating  = [][]float64{{1, 2}, {3, 1}}
	oscillatingB = []float64{3, 4}
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// newtonF is F(x, y) = [x² + xy − 10, y + 3xy² − 57]; root (2, 3).
func newtonF(x []float64) ([]float64, error) {
	return []float64{
		x[0]*x[0] + x[0]*x[1] - 10,
		x[1] + 3*x[0]*x[1]*x[1] - 57,
	}, nil
}

// newtonJ is the analytic Jacobian of newtonF.
func newtonJ(x []float64) (matrix.Matrix, error) {
	return matrix.NewFromRows([][]float64{
		{2*x[0] + x[1], x[0]},
		{3 * x[1] * x[1], 1 + 6*x[0]*x[1]},
	})
}

// requireNumerical asserts a failed status carrying target at (iteration, row).
func requireNumerical(t *testing.T, res *solver.Result, target error, iteration, row int) {
	t.Helper()
	require.Equal(t, solver.StatusFailed, res.Status.Kind)
	require.ErrorIs(t, res.Err(), target)

	var ne *solver.NumericalError
	require.True(t, errors.As(res.Err(), &ne))
	require.Equal(t, iteration, ne.Iteration)
	require.Equal(t, row, ne.Row)
}

// requireValidation asserts a *ValidationError wrapping target.
func requireValidation(t *testing.T, err error, target error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, solver.IsValidation(err), "want *ValidationError, got %T: %v", err, err)
	require.ErrorIs(t, err, target)
}
