// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJacobi_DominantScenario pins the convergence path on the 3x3 dominant system.
func TestJacobi_DominantScenario(t *testing.T) {
	res, err := solver.Jacobi(mustRows(t, dominant3), dominant3b)
	require.NoError(t, err)

	require.True(t, res.Converged())
	require.Equal(t, solver.CriterionResidual, res.Status.Criterion)
	require.Equal(t, solver.MethodJacobi, res.Method)
	require.Equal(t, solver.DominanceStrict, res.Dominance)
	require.Equal(t, 43, res.Iterations)
	require.Len(t, res.History, res.Iterations+1)
	require.InDeltaSlice(t, dominant3x, res.Solution, 1e-6)
	require.Less(t, res.ResidualNorm, solver.DefaultTolerance)

	h0 := res.History[0]
	assert.Equal(t, 0, h0.Iteration)
	assert.Equal(t, []float64{0, 0, 0}, h0.X)
	assert.InDelta(t, math.Sqrt(170), h0.ResidualNorm, 1e-12) // ‖b‖₂
	assert.Equal(t, []float64{3, -0.25, 1.25}, res.History[1].X)
	assert.False(t, h0.HasStep())
	assert.Equal(t, []float64{3, -0.25, 1.25}, res.History[1].Step) // x₁ − x₀ with x₀ = 0
	assert.Equal(t, 3.0, res.History[1].StepNorm)

	// Residual norms never increase on this system.
	for k := 1; k < len(res.History); k++ {
		assert.LessOrEqualf(t, res.History[k].ResidualNorm, res.History[k-1].ResidualNorm, "k=%d", k)
		assert.Equal(t, k, res.History[k].Iteration)
	}
}

// TestJacobi_Property_DominantConverges runs Jacobi on fuzzed, strictly
// diagonally dominant systems, where convergence is guaranteed.
func TestJacobi_Property_DominantConverges(t *testing.T) {
	f := fuzz.NewWithSeed(20240612).NilChance(0).Funcs(
		func(v *float64, c fuzz.Continue) { *v = 2*c.Float64() - 1 }, // [-1, 1)
	)
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		rows := make([][]float64, n)
		b := make([]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				f.Fuzz(&rows[i][j])
			}
			rows[i][i] = float64(n) + 1 // off-diagonal row sum < n
			if trial%2 == 1 {
				rows[i][i] = -rows[i][i]
			}
			f.Fuzz(&b[i])
		}
		b[0] = 1 // keep ‖b‖ away from the tolerance

		res, err := solver.Jacobi(mustRows(t, rows), b, solver.WithMaxIterations(500))
		require.NoError(t, err)

		require.Equal(t, solver.DominanceStrict, res.Dominance, "trial %d", trial)
		require.True(t, res.Converged(), "trial %d: %s", trial, res.Status)
		require.Less(t, res.ResidualNorm, solver.DefaultTolerance, "trial %d", trial)
		require.Equal(t, res.Last().ResidualNorm, res.ResidualNorm)
		require.Less(t, res.Last().ResidualNorm, res.History[0].ResidualNorm, "trial %d", trial)

		r, err := matrix.Residual(mustRows(t, rows), res.Solution, b)
		require.NoError(t, err)
		require.Less(t, matrix.Norm2(r), solver.DefaultTolerance)
	}
}

// TestJacobi_BudgetTooSmall: 30 sweeps are not enough at tol 1e-6.
func TestJacobi_BudgetTooSmall(t *testing.T) {
	res, err := solver.Jacobi(mustRows(t, dominant3), dominant3b, solver.WithMaxIterations(30))
	require.NoError(t, err)

	require.Equal(t, solver.StatusNotConverged, res.Status.Kind)
	require.NoError(t, res.Err())
	require.Equal(t, 30, res.Iterations)
	require.Len(t, res.History, 31)
	require.InDelta(t, 1.0e-4, res.ResidualNorm, 1e-6)
	require.Equal(t, res.Last().X, res.Solution)
}

// TestGaussSeidel_DominantScenario converges faster than Jacobi.
func TestGaussSeidel_DominantScenario(t *testing.T) {
	res, err := solver.GaussSeidel(mustRows(t, dominant3), dominant3b)
	require.NoError(t, err)

	require.True(t, res.Converged())
	require.Equal(t, 10, res.Iterations)
	require.Equal(t, []float64{3, 0.5, 0.75}, res.History[1].X)
	require.InDeltaSlice(t, dominant3x, res.Solution, 1e-6)
}

// TestSOR_OverRelaxed checks w = 1.2 on the dominant system.
func TestSOR_OverRelaxed(t *testing.T) {
	res, err := solver.SOR(mustRows(t, dominant3), dominant3b, solver.WithRelaxation(1.2))
	require.NoError(t, err)

	require.True(t, res.Converged())
	require.Equal(t, 12, res.Iterations)
	require.Equal(t, 1.2, res.Relaxation)
	require.InDeltaSlice(t, []float64{3.6, 0.78, 0.888}, res.History[1].X, 1e-12)
	require.Equal(t, solver.DominanceUnchecked, res.Dominance)
}

// TestSOR_UnitRelaxationIsGaussSeidel compares SOR(w=1) with a direct
// Gauss-Seidel reference iteration, iterate for iterate.
func TestSOR_UnitRelaxationIsGaussSeidel(t *testing.T) {
	A := mustRows(t, dominant3)

	sor, err := solver.SOR(A, dominant3b, solver.WithRelaxation(1))
	require.NoError(t, err)
	gs, err := solver.GaussSeidel(A, dominant3b)
	require.NoError(t, err)
	require.Equal(t, len(gs.History), len(sor.History))

	x := []float64{0, 0, 0}
	for k := 1; k < len(sor.History); k++ {
		for i := range x {
			s := 0.0
			for j := range x {
				if j != i {
					s += dominant3[i][j] * x[j]
				}
			}
			x[i] = (dominant3b[i] - s) / dominant3[i][i]
		}
		require.InDeltaSlicef(t, x, sor.History[k].X, 1e-15, "k=%d", k)
		require.Equal(t, gs.History[k].X, sor.History[k].X)
	}
}

// TestStationary_ZeroDiagonal: fatal at iteration 1, row 0, only entry 0 recorded.
func TestStationary_ZeroDiagonal(t *testing.T) {
	t.Parallel()

	for _, run := range []struct {
		name string
		fn   func(matrix.Matrix, []float64, ...solver.Option) (*solver.Result, error)
	}{
		{"jacobi", solver.Jacobi},
		{"sor", solver.SOR},
		{"gauss-seidel", solver.GaussSeidel},
	} {
		run := run
		t.Run(run.name, func(t *testing.T) {
			t.Parallel()
			res, err := run.fn(mustRows(t, zeroLead), zeroLeadB)
			require.NoError(t, err)

			requireNumerical(t, res, solver.ErrZeroDiagonal, 1, 0)
			require.Len(t, res.History, 1)
			require.Zero(t, res.Iterations)
			require.Equal(t, []float64{0, 0}, res.Solution)
			require.InDelta(t, math.Sqrt(5), res.ResidualNorm, 1e-12)
		})
	}
}

// TestStationary_ZeroDiagonalLaterRow reports the first offending row.
func TestStationary_ZeroDiagonalLaterRow(t *testing.T) {
	A := mustRows(t, [][]float64{{2, 1, 0}, {1, 0, 1}, {0, 1, 3}}) // det = -5
	res, err := solver.Jacobi(A, []float64{1, 1, 1})
	require.NoError(t, err)

	requireNumerical(t, res, solver.ErrZeroDiagonal, 1, 1)
	require.Equal(t, "jacobi: iteration 1: row 1: solver: zero diagonal element", res.Err().Error())
}

// TestStationary_NonConvergent: budget of 5 on an oscillating system.
func TestStationary_NonConvergent(t *testing.T) {
	A := mustRows(t, oscillating)
	opts := []solver.Option{solver.WithMaxIterations(5), solver.WithTolerance(1e-10)}

	jac, err := solver.Jacobi(A, oscillatingB, opts...)
	require.NoError(t, err)
	require.Equal(t, solver.StatusNotConverged, jac.Status.Kind)
	require.Equal(t, 5, jac.Iterations)
	require.Len(t, jac.History, 6)
	require.Equal(t, []float64{73, 109}, jac.Solution)
	require.Equal(t, solver.DominanceNotStrict, jac.Dominance)

	sor, err := solver.SOR(A, oscillatingB, opts...)
	require.NoError(t, err)
	require.Equal(t, solver.StatusNotConverged, sor.Status.Kind)
	require.Equal(t, 5, sor.Iterations)
	require.Len(t, sor.History, 6)
}

// TestStationary_Diverged: iterates overflow long before the budget runs out.
func TestStationary_Diverged(t *testing.T) {
	res, err := solver.GaussSeidel(mustRows(t, oscillating), oscillatingB, solver.WithMaxIterations(5000))
	require.NoError(t, err)

	requireNumerical(t, res, solver.ErrDiverged, res.Iterations+1, -1)
	require.Len(t, res.History, res.Iterations+1)
	require.Less(t, res.Iterations, 5000)
	for _, v := range res.Solution {
		require.False(t, math.IsNaN(v))
	}
}

// TestStationary_ExactGuessStillSweeps: one sweep always runs.
func TestStationary_ExactGuessStillSweeps(t *testing.T) {
	res, err := solver.Jacobi(mustRows(t, dominant3), dominant3b, solver.WithInitialGuess(dominant3x))
	require.NoError(t, err)

	require.True(t, res.Converged())
	require.Equal(t, 1, res.Iterations)
	require.Zero(t, res.History[0].ResidualNorm)
	require.Equal(t, dominant3x, res.Solution)
}

// TestStationary_HistoryIsSnapshot: results never alias internal buffers or each other.
func TestStationary_HistoryIsSnapshot(t *testing.T) {
	res, err := solver.SOR(mustRows(t, dominant3), dominant3b)
	require.NoError(t, err)

	last := append([]float64(nil), res.Last().X...)
	res.Solution[0] = 42
	require.Equal(t, last, res.Last().X)

	for k := 1; k < len(res.History); k++ {
		require.NotSame(t, &res.History[k-1].X[0], &res.History[k].X[0])
	}
}

// TestStationary_Validation reuses the LU pre-checks.
func TestStationary_Validation(t *testing.T) {
	_, err := solver.Jacobi(mustRows(t, [][]float64{{1, 2}, {2, 4}}), []float64{1, 2})
	requireValidation(t, err, matrix.ErrSingular)

	_, err = solver.SOR(mustRows(t, [][]float64{{1, 2}}), []float64{1})
	requireValidation(t, err, matrix.ErrNonSquare)
}
