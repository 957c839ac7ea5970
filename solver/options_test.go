// SPDX-License-Identifier: MIT

package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/solver"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies the resolved defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := solver.Resolve()

	require.Equal(t, solver.DefaultTolerance, o.Tolerance())
	require.Equal(t, solver.DefaultMaxIterations, o.MaxIterations())
	require.Equal(t, solver.DefaultRelaxation, o.Relaxation())
}

// TestOptions_LastWins ensures options apply in order and nil options are skipped.
func TestOptions_LastWins(t *testing.T) {
	o := solver.Resolve(
		solver.WithTolerance(1e-3),
		nil,
		solver.WithTolerance(1e-9),
		solver.WithMaxIterations(7),
		solver.WithRelaxation(1.5),
	)

	require.Equal(t, 1e-9, o.Tolerance())
	require.Equal(t, 7, o.MaxIterations())
	require.Equal(t, 1.5, o.Relaxation())
}

// TestWithInitialGuess_Copies ensures later caller writes do not leak in.
func TestWithInitialGuess_Copies(t *testing.T) {
	x0 := append([]float64(nil), dominant3x...)
	opt := solver.WithInitialGuess(x0)
	x0[0] = 1e6

	res, err := solver.Jacobi(mustRows(t, dominant3), dominant3b, opt)
	require.NoError(t, err)
	require.Equal(t, dominant3x, res.History[0].X)
}

// TestOptions_Validation covers every numeric rejection.
func TestOptions_Validation(t *testing.T) {
	t.Parallel()

	A := mustRows(t, dominant3)
	tests := []struct {
		name string
		opts []solver.Option
		want error
	}{
		{"zero tolerance", []solver.Option{solver.WithTolerance(0)}, solver.ErrBadTolerance},
		{"negative tolerance", []solver.Option{solver.WithTolerance(-1)}, solver.ErrBadTolerance},
		{"NaN tolerance", []solver.Option{solver.WithTolerance(math.NaN())}, solver.ErrBadTolerance},
		{"zero iterations", []solver.Option{solver.WithMaxIterations(0)}, solver.ErrBadMaxIterations},
		{"zero relaxation", []solver.Option{solver.WithRelaxation(0)}, solver.ErrBadRelaxation},
		{"Inf relaxation", []solver.Option{solver.WithRelaxation(math.Inf(1))}, solver.ErrBadRelaxation},
		{"zero pivot tolerance", []solver.Option{solver.WithPivotTolerance(0)}, solver.ErrBadTolerance},
		{"short guess", []solver.Option{solver.WithInitialGuess([]float64{1})}, solver.ErrBadInitialGuess},
		{"NaN guess", []solver.Option{solver.WithInitialGuess([]float64{0, math.NaN(), 0})}, matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := solver.SOR(A, dominant3b, tc.opts...)
			require.Nil(t, res)
			requireValidation(t, err, tc.want)
		})
	}
}

// TestOptions_RelaxationIgnoredByJacobi: Jacobi never reads w.
func TestOptions_RelaxationIgnoredByJacobi(t *testing.T) {
	res, err := solver.Jacobi(mustRows(t, dominant3), dominant3b, solver.WithRelaxation(0))
	require.NoError(t, err)
	require.True(t, res.Converged())
	require.Zero(t, res.Relaxation)
}

// TestOptions_GaussSeidelForcesUnitRelaxation: WithRelaxation cannot change Gauss-Seidel.
func TestOptions_GaussSeidelForcesUnitRelaxation(t *testing.T) {
	A := mustRows(t, dominant3)

	plain, err := solver.GaussSeidel(A, dominant3b)
	require.NoError(t, err)
	overridden, err := solver.GaussSeidel(A, dominant3b, solver.WithRelaxation(1.7))
	require.NoError(t, err)

	require.Equal(t, 1.0, overridden.Relaxation)
	require.Equal(t, plain.History, overridden.History)
}
