// SPDX-License-Identifier: MIT

package formula_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/numsolve/formula"
	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/solver"
	"github.com/stretchr/testify/require"
)

var (
	newtonVars = []string{"x", "y"}
	newtonEqs  = []string{"x^2 + x*y - 10", "y + 3*x*y**2 - 57"}
	newtonJac  = [][]string{
		{"2*x + y", "x"},
		{"3*y^2", "1 + 6*x*y"},
	}
)

// TestNewSystem_EvaluatesFAndJ checks both formulas at (1, 1).
func TestNewSystem_EvaluatesFAndJ(t *testing.T) {
	sys, err := formula.NewSystem(newtonVars, newtonEqs, newtonJac)
	require.NoError(t, err)
	require.Equal(t, 2, sys.Dim())
	require.True(t, sys.HasJacobian())
	require.Equal(t, newtonVars, sys.Vars())

	fx, err := sys.F([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{-8, -53}, fx)

	jm, err := sys.J([]float64{1, 1})
	require.NoError(t, err)
	jd, err := matrix.ToDense(jm)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 1}, {3, 7}}, jd.ToRows())
}

// TestSystem_NumericJacobian matches the analytic Jacobian closely.
func TestSystem_NumericJacobian(t *testing.T) {
	analytic, err := formula.NewSystem(newtonVars, newtonEqs, newtonJac)
	require.NoError(t, err)
	numeric, err := formula.NewSystem(newtonVars, newtonEqs, nil)
	require.NoError(t, err)
	require.False(t, numeric.HasJacobian())

	for _, x := range [][]float64{{1, 1}, {1.5, 3.5}, {-2, 0.25}} {
		ja, err := analytic.J(x)
		require.NoError(t, err)
		jn, err := numeric.J(x)
		require.NoError(t, err)
		ok, err := matrix.AllClose(jn, ja, 1e-7, 1e-7)
		require.NoError(t, err)
		require.Truef(t, ok, "at %v: %v vs %v", x, jn, ja)
	}
}

// TestSystem_MathTable exercises the registered functions and constants.
func TestSystem_MathTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"sin(pi/2)", 0, 1},
		{"cos(0) + x", 2, 3},
		{"exp(1) - e", 0, 0},
		{"log(e^2)", 0, 2},
		{"log10(1000)", 0, 3},
		{"sqrt(x)", 16, 4},
		{"pow(x, 3)", 2, 8},
		{"hypot(3, x)", 4, 5},
		{"atan(1)*4", 0, math.Pi},
		{"tanh(0) + sinh(0) + cosh(0)", 0, 1},
		{"asin(1) + acos(1)", 0, math.Pi / 2},
		{"tan(0)", 0, 0},
		{"2**x", 10, 1024},
		{"7", 0, 7}, // integer literal result
		{"1/4", 0, 0.25},
		{"abs(-x)", 3, 3}, // expr builtin
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			sys, err := formula.NewSystem([]string{"x"}, []string{tc.src}, nil)
			require.NoError(t, err)
			out, err := sys.F([]float64{tc.x})
			require.NoError(t, err)
			require.InDelta(t, tc.want, out[0], 1e-12)
		})
	}
}

// TestNewSystem_Rejects covers construction failures.
func TestNewSystem_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars []string
		eqs  []string
		jac  [][]string
		want error
	}{
		{"no variables", nil, nil, nil, formula.ErrNoVariables},
		{"bad name", []string{"1x"}, []string{"1"}, nil, formula.ErrBadVariable},
		{"duplicate", []string{"x", "x"}, []string{"x", "x"}, nil, formula.ErrBadVariable},
		{"reserved constant", []string{"pi"}, []string{"pi"}, nil, formula.ErrBadVariable},
		{"reserved function", []string{"sin"}, []string{"1"}, nil, formula.ErrBadVariable},
		{"too few equations", []string{"x", "y"}, []string{"x"}, nil, formula.ErrShape},
		{"undeclared identifier", []string{"x"}, []string{"x + z"}, nil, formula.ErrCompile},
		{"syntax", []string{"x"}, []string{"x +"}, nil, formula.ErrCompile},
		{"jacobian rows", []string{"x"}, []string{"x"}, [][]string{{"1"}, {"1"}}, formula.ErrShape},
		{"jacobian cols", []string{"x"}, []string{"x"}, [][]string{{"1", "2"}}, formula.ErrShape},
		{"jacobian compile", []string{"x"}, []string{"x"}, [][]string{{"y"}}, formula.ErrCompile},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sys, err := formula.NewSystem(tc.vars, tc.eqs, tc.jac)
			require.Nil(t, sys)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSystem_RuntimeErrors: non-numeric results, arity and input length.
func TestSystem_RuntimeErrors(t *testing.T) {
	sys, err := formula.NewSystem([]string{"x"}, []string{"x > 1"}, nil)
	require.NoError(t, err)
	_, err = sys.F([]float64{2})
	require.ErrorIs(t, err, formula.ErrNonNumeric)

	sys, err = formula.NewSystem([]string{"x"}, []string{"pow(x)"}, nil)
	if err == nil {
		_, err = sys.F([]float64{2})
	}
	require.ErrorContains(t, err, "wrong number of arguments")

	sys, err = formula.NewSystem([]string{"x"}, []string{"x"}, nil)
	require.NoError(t, err)
	_, err = sys.F([]float64{1, 2})
	require.ErrorIs(t, err, formula.ErrShape)
	_, err = sys.J([]float64{1, 2})
	require.ErrorIs(t, err, formula.ErrShape)
}

// TestSystem_DrivesNewton solves the textbook system from formulas alone.
func TestSystem_DrivesNewton(t *testing.T) {
	for _, jac := range [][][]string{newtonJac, nil} {
		sys, err := formula.NewSystem(newtonVars, newtonEqs, jac)
		require.NoError(t, err)

		res, err := solver.Newton(sys.F, sys.J, []float64{1, 1})
		require.NoError(t, err)
		require.True(t, res.Converged(), "analytic=%v: %v", jac != nil, res.Status)
		require.InDeltaSlice(t, []float64{2, 3}, res.Solution, 1e-6)
	}
}

// TestFunctions lists the registered table.
func TestFunctions(t *testing.T) {
	names := formula.Functions()
	sort.Strings(names)
	require.Equal(t, []string{
		"acos", "asin", "atan", "cos", "cosh", "exp", "hypot", "log", "log10",
		"pow", "sin", "sinh", "sqrt", "tan", "tanh",
	}, names)
}
