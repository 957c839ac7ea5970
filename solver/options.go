// SPDX-License-Identifier: MIT

// Package solver: functional configuration shared by every solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions and the per-method validation of the resolved values.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts at least one solver and is tested.
//   - Options never panic; nonsensical values surface as *ValidationError at
//     solve time, because they usually come straight from user input.
package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numsolve/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the stopping threshold for residual and step norms.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the hard iteration budget.
	DefaultMaxIterations = 100

	// DefaultRelaxation is the unrelaxed factor (plain Gauss-Seidel / full Newton step).
	DefaultRelaxation = 1.0

	// DefaultPivoting selects the pivoted LU variant.
	DefaultPivoting = true
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tolerance         float64   // DefaultTolerance
	maxIterations     int       // DefaultMaxIterations
	relaxation        float64   // DefaultRelaxation
	initialGuess      []float64 // nil ⇒ zero vector
	pivoting          bool      // DefaultPivoting
	pivotTolerance    float64   // matrix.DefaultPivotTolerance
	singularThreshold float64   // matrix.DefaultSingularThreshold
}

func defaultOptions() Options {
	return Options{
		tolerance:         DefaultTolerance,
		maxIterations:     DefaultMaxIterations,
		relaxation:        DefaultRelaxation,
		pivoting:          DefaultPivoting,
		pivotTolerance:    matrix.DefaultPivotTolerance,
		singularThreshold: matrix.DefaultSingularThreshold,
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithTolerance sets the convergence tolerance (must be > 0 and finite).
// Residual norms (and Newton step norms) strictly below it stop the iteration.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the hard iteration budget (must be > 0).
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.maxIterations = n }
}

// WithRelaxation sets the relaxation (SOR) or damping (Newton) factor w.
// w = 1 is the unrelaxed method. Jacobi ignores it.
func WithRelaxation(w float64) Option {
	return func(o *Options) { o.relaxation = w }
}

// WithInitialGuess sets x₀ for Jacobi/SOR. The slice is copied.
// Newton takes its initial guess as an explicit argument instead.
func WithInitialGuess(x0 []float64) Option {
	cp := matrix.CloneVector(x0)
	return func(o *Options) { o.initialGuess = cp }
}

// WithPivoting toggles partial pivoting for SolveLU.
func WithPivoting(on bool) Option {
	return func(o *Options) { o.pivoting = on }
}

// WithPivotTolerance sets the |value| under which a pivot or diagonal divisor
// is treated as zero.
func WithPivotTolerance(tol float64) Option {
	return func(o *Options) { o.pivotTolerance = tol }
}

// WithSingularThreshold sets the |det(A)| bound under which A is rejected as singular.
func WithSingularThreshold(th float64) Option {
	return func(o *Options) { o.singularThreshold = th }
}

// Tolerance returns the resolved tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIterations returns the resolved iteration budget.
func (o Options) MaxIterations() int { return o.maxIterations }

// Relaxation returns the resolved relaxation factor.
func (o Options) Relaxation() float64 { return o.relaxation }

// Resolve exposes the effective configuration for a set of options.
// Useful for callers that render or log the configuration.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// validateNumeric checks the shared numeric policy.
func (o Options) validateNumeric() error {
	if !finitePositive(o.pivotTolerance) {
		return fmt.Errorf("pivot tolerance %g: %w", o.pivotTolerance, ErrBadTolerance)
	}
	if !finitePositive(o.singularThreshold) {
		return fmt.Errorf("singular threshold %g: %w", o.singularThreshold, ErrBadTolerance)
	}

	return nil
}

// validateIterative checks tolerance, budget and (when used) relaxation.
func (o Options) validateIterative(usesRelaxation bool) error {
	if !finitePositive(o.tolerance) {
		return fmt.Errorf("tolerance %g: %w", o.tolerance, ErrBadTolerance)
	}
	if o.maxIterations <= 0 {
		return fmt.Errorf("max iterations %d: %w", o.maxIterations, ErrBadMaxIterations)
	}
	if usesRelaxation && !finitePositive(o.relaxation) {
		return fmt.Errorf("w=%g: %w", o.relaxation, ErrBadRelaxation)
	}

	return o.validateNumeric()
}
