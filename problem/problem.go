// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/numsolve/formula"
	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/solver"
	"gopkg.in/yaml.v3"
)

// Kind selects the family of solvers a problem is meant for.
type Kind string

const (
	KindLinear    Kind = "linear"
	KindNonlinear Kind = "nonlinear"
)

var (
	// ErrDecode wraps YAML syntax and schema errors.
	ErrDecode = errors.New("problem: cannot decode document")

	// ErrInvalid indicates a document that decodes but is not usable.
	ErrInvalid = errors.New("problem: invalid document")

	// ErrWrongKind indicates a linear accessor on a nonlinear problem or vice versa.
	ErrWrongKind = errors.New("problem: wrong kind")
)

// Problem is one input document. Optional settings are pointers so that
// "absent" and "zero" stay distinguishable.
type Problem struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Kind        Kind   `yaml:"kind" json:"kind"`

	// Linear systems.
	A [][]float64 `yaml:"a,omitempty" json:"a,omitempty"`
	B []float64   `yaml:"b,omitempty" json:"b,omitempty"`

	// Nonlinear systems.
	Variables []string   `yaml:"variables,omitempty" json:"variables,omitempty"`
	Equations []string   `yaml:"equations,omitempty" json:"equations,omitempty"`
	Jacobian  [][]string `yaml:"jacobian,omitempty" json:"jacobian,omitempty"`

	// Settings.
	InitialGuess  []float64 `yaml:"initialGuess,omitempty" json:"initialGuess,omitempty"`
	Tolerance     *float64  `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
	MaxIterations *int      `yaml:"maxIterations,omitempty" json:"maxIterations,omitempty"`
	Relaxation    *float64  `yaml:"relaxation,omitempty" json:"relaxation,omitempty"`
	Pivoting      *bool     `yaml:"pivoting,omitempty" json:"pivoting,omitempty"`
}

// Parse decodes and validates one YAML document. Unknown fields are errors.
func Parse(data []byte) (*Problem, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks structure only. Numerical properties (singularity,
// dominance, convergence) are left to the solvers.
func (p *Problem) Validate() error {
	switch p.Kind {
	case KindLinear:
		if len(p.A) == 0 {
			return invalidf("linear problem needs a")
		}
		n := len(p.A)
		for i, row := range p.A {
			if len(row) != n {
				return invalidf("a row %d has %d entries, want %d", i, len(row), n)
			}
		}
		if len(p.B) != n {
			return invalidf("b has %d entries, want %d", len(p.B), n)
		}
		if len(p.Equations) > 0 || len(p.Variables) > 0 || len(p.Jacobian) > 0 {
			return invalidf("linear problem cannot have variables, equations or jacobian")
		}
		if p.InitialGuess != nil && len(p.InitialGuess) != n {
			return invalidf("initialGuess has %d entries, want %d", len(p.InitialGuess), n)
		}
	case KindNonlinear:
		n := len(p.Variables)
		if n == 0 {
			return invalidf("nonlinear problem needs variables")
		}
		if len(p.Equations) != n {
			return invalidf("%d equations for %d variables", len(p.Equations), n)
		}
		if len(p.InitialGuess) != n {
			return invalidf("initialGuess has %d entries, want %d", len(p.InitialGuess), n)
		}
		if len(p.A) > 0 || len(p.B) > 0 {
			return invalidf("nonlinear problem cannot have a or b")
		}
		if p.Pivoting != nil {
			return invalidf("pivoting applies to linear problems only")
		}
	default:
		return invalidf("kind %q, want %q or %q", p.Kind, KindLinear, KindNonlinear)
	}

	if p.Tolerance != nil && !(*p.Tolerance > 0) {
		return invalidf("tolerance must be > 0, got %g", *p.Tolerance)
	}
	if p.MaxIterations != nil && *p.MaxIterations <= 0 {
		return invalidf("maxIterations must be > 0, got %d", *p.MaxIterations)
	}
	if p.Relaxation != nil && !(*p.Relaxation > 0) {
		return invalidf("relaxation must be > 0, got %g", *p.Relaxation)
	}

	return nil
}

// Options converts the settings present in the document into solver options.
// Absent settings keep the solver defaults. Newton receives the initial
// guess as an argument instead, so it is not included for nonlinear problems.
func (p *Problem) Options() []solver.Option {
	var opts []solver.Option
	if p.Tolerance != nil {
		opts = append(opts, solver.WithTolerance(*p.Tolerance))
	}
	if p.MaxIterations != nil {
		opts = append(opts, solver.WithMaxIterations(*p.MaxIterations))
	}
	if p.Relaxation != nil {
		opts = append(opts, solver.WithRelaxation(*p.Relaxation))
	}
	if p.Pivoting != nil {
		opts = append(opts, solver.WithPivoting(*p.Pivoting))
	}
	if p.Kind == KindLinear && p.InitialGuess != nil {
		opts = append(opts, solver.WithInitialGuess(p.InitialGuess))
	}

	return opts
}

// LinearSystem returns A and b.
func (p *Problem) LinearSystem() (*matrix.Dense, []float64, error) {
	if p.Kind != KindLinear {
		return nil, nil, fmt.Errorf("%s is %s: %w", p.Name, p.Kind, ErrWrongKind)
	}
	a, err := matrix.NewFromRows(p.A)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: a: %w", ErrInvalid, err)
	}

	return a, matrix.CloneVector(p.B), nil
}

// NonlinearSystem compiles the equations (and Jacobian, if present).
func (p *Problem) NonlinearSystem() (*formula.System, error) {
	if p.Kind != KindNonlinear {
		return nil, fmt.Errorf("%s is %s: %w", p.Name, p.Kind, ErrWrongKind)
	}
	sys, err := formula.NewSystem(p.Variables, p.Equations, p.Jacobian)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return sys, nil
}
