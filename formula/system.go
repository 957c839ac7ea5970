// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math"
	"regexp"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/katalvlaran/numsolve/matrix"
)

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// System is a compiled square nonlinear system F(x) = 0 with optional
// analytic Jacobian. It is immutable and safe for concurrent use.
type System struct {
	vars      []string
	equations []string
	f         []*vm.Program
	j         [][]*vm.Program // nil: finite differences
}

// NewSystem compiles one equation per variable and, optionally, the n×n
// Jacobian formulas (jacobian[i][k] = ∂F_i/∂x_k). Pass nil to use finite differences.
//
// Errors: ErrNoVariables, ErrBadVariable, ErrShape, ErrCompile (with the
// offending formula's position).
func NewSystem(vars, equations []string, jacobian [][]string) (*System, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if !identRE.MatchString(v) || reserved(v) || seen[v] {
			return nil, fmt.Errorf("%q: %w", v, ErrBadVariable)
		}
		seen[v] = true
	}
	n := len(vars)
	if len(equations) != n {
		return nil, fmt.Errorf("%d equations for %d variables: %w", len(equations), n, ErrShape)
	}

	s := &System{
		vars:      append([]string(nil), vars...),
		equations: append([]string(nil), equations...),
		f:         make([]*vm.Program, n),
	}
	opts := compileOptions(s.env(make([]float64, n)))

	var err error
	for i, src := range equations {
		if s.f[i], err = compile(src, opts); err != nil {
			return nil, fmt.Errorf("F[%d]: %w", i, err)
		}
	}

	if jacobian == nil {
		return s, nil
	}
	if len(jacobian) != n {
		return nil, fmt.Errorf("jacobian has %d rows, want %d: %w", len(jacobian), n, ErrShape)
	}
	s.j = make([][]*vm.Program, n)
	for i, row := range jacobian {
		if len(row) != n {
			return nil, fmt.Errorf("jacobian row %d has %d entries, want %d: %w", i, len(row), n, ErrShape)
		}
		s.j[i] = make([]*vm.Program, n)
		for k, src := range row {
			if s.j[i][k], err = compile(src, opts); err != nil {
				return nil, fmt.Errorf("J[%d][%d]: %w", i, k, err)
			}
		}
	}

	return s, nil
}

func compileOptions(env map[string]any) []expr.Option {
	return append([]expr.Option{expr.Env(env)}, functionOptions()...)
}

func compile(src string, opts []expr.Option) (*vm.Program, error) {
	p, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}

	return p, nil
}

// Vars returns a copy of the declared variable names.
func (s *System) Vars() []string { return append([]string(nil), s.vars...) }

// Equations returns a copy of the equation sources.
func (s *System) Equations() []string { return append([]string(nil), s.equations...) }

// Dim returns the number of unknowns.
func (s *System) Dim() int { return len(s.vars) }

// HasJacobian reports whether analytic Jacobian formulas were supplied.
func (s *System) HasJacobian() bool { return s.j != nil }

// env binds x to the variable names next to the constants.
func (s *System) env(x []float64) map[string]any {
	env := make(map[string]any, len(s.vars)+len(constants))
	for k, v := range constants {
		env[k] = v
	}
	for i, name := range s.vars {
		env[name] = x[i]
	}

	return env
}

func run(p *vm.Program, env map[string]any) (float64, error) {
	out, err := expr.Run(p, env)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEvaluate, err)
	}

	return toFloat(out)
}

// F evaluates every equation at x. It matches solver.VectorFunc.
func (s *System) F(x []float64) ([]float64, error) {
	if len(x) != len(s.vars) {
		return nil, fmt.Errorf("len(x)=%d, want %d: %w", len(x), len(s.vars), ErrShape)
	}
	env := s.env(x)
	out := make([]float64, len(s.f))
	var err error
	for i, p := range s.f {
		if out[i], err = run(p, env); err != nil {
			return nil, fmt.Errorf("F[%d] = %s: %w", i, s.equations[i], err)
		}
	}

	return out, nil
}

// J evaluates the Jacobian at x. It matches solver.JacobianFunc.
func (s *System) J(x []float64) (matrix.Matrix, error) {
	if s.j == nil {
		return s.numericJacobian(x)
	}
	if len(x) != len(s.vars) {
		return nil, fmt.Errorf("len(x)=%d, want %d: %w", len(x), len(s.vars), ErrShape)
	}
	n := len(s.vars)
	env := s.env(x)
	jm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := range s.j {
		for k, p := range s.j[i] {
			if v, err = run(p, env); err != nil {
				return nil, fmt.Errorf("J[%d][%d]: %w", i, k, err)
			}
			if err = jm.Set(i, k, v); err != nil {
				return nil, fmt.Errorf("J[%d][%d]: %w", i, k, err)
			}
		}
	}

	return jm, nil
}

// numericJacobian approximates ∂F_i/∂x_k by central differences with
// h = cbrt(eps)·max(1, |x_k|).
func (s *System) numericJacobian(x []float64) (matrix.Matrix, error) {
	n := len(s.vars)
	if len(x) != n {
		return nil, fmt.Errorf("len(x)=%d, want %d: %w", len(x), n, ErrShape)
	}
	jm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	h0 := math.Cbrt(2.220446049250313e-16)
	xp := matrix.CloneVector(x)
	var fp, fm []float64
	for k := 0; k < n; k++ {
		h := h0 * math.Max(1, math.Abs(x[k]))
		xp[k] = x[k] + h
		if fp, err = s.F(xp); err != nil {
			return nil, err
		}
		xp[k] = x[k] - h
		if fm, err = s.F(xp); err != nil {
			return nil, err
		}
		xp[k] = x[k]
		for i := 0; i < n; i++ {
			if err = jm.Set(i, k, (fp[i]-fm[i])/(2*h)); err != nil {
				return nil, fmt.Errorf("J[%d][%d]: %w", i, k, err)
			}
		}
	}

	return jm, nil
}
