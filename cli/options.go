// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/numsolve/problem"
	"github.com/katalvlaran/numsolve/render"
	"github.com/katalvlaran/numsolve/solver"
)

// Setting names one solver flag a command accepts.
type Setting string

const (
	SettingTolerance     Setting = "tolerance"
	SettingMaxIterations Setting = "max-iterations"
	SettingRelaxation    Setting = "relaxation"
	SettingInitialGuess  Setting = "initial-guess"
	SettingPivoting      Setting = "pivoting"
)

var (
	errNoInput     = errors.New("one of --file or --preset is required")
	errManyInputs  = errors.New("--file and --preset are mutually exclusive")
	errNoArguments = errors.New("no positional arguments expected")
)

// SolveOptions holds what every solving command needs: where the problem
// comes from, how to print the result, and optional overrides of the
// document's solver settings.
type SolveOptions struct {
	File   string
	Preset string
	Output string

	Tolerance     float64
	MaxIterations int
	Relaxation    float64
	InitialGuess  []float64
	Pivoting      bool

	Problem *problem.Problem
	Format  render.Format

	settings []Setting
	flags    *pflag.FlagSet

	IOStreams
}

// NewSolveOptions returns options with solver defaults for the given settings.
func NewSolveOptions(streams IOStreams, settings ...Setting) *SolveOptions {
	return &SolveOptions{
		Output:        string(render.FormatText),
		Tolerance:     solver.DefaultTolerance,
		MaxIterations: solver.DefaultMaxIterations,
		Relaxation:    solver.DefaultRelaxation,
		Pivoting:      solver.DefaultPivoting,
		settings:      settings,
		IOStreams:     streams,
	}
}

// AddFlags registers the input and output flags plus one flag per setting.
func (o *SolveOptions) AddFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&o.File, "file", "f", o.File, "Problem document (YAML)")
	fs.StringVarP(&o.Preset, "preset", "p", o.Preset, "Built-in problem name")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format, one of %v", render.Formats()))

	for _, s := range o.settings {
		switch s {
		case SettingTolerance:
			fs.Float64Var(&o.Tolerance, string(s), o.Tolerance, "Stop when the residual (or Newton step) norm drops below this value")
		case SettingMaxIterations:
			fs.IntVar(&o.MaxIterations, string(s), o.MaxIterations, "Iteration budget")
		case SettingRelaxation:
			fs.Float64Var(&o.Relaxation, string(s), o.Relaxation, "Relaxation factor w (SOR) or damping factor (Newton); 1 is unrelaxed")
		case SettingInitialGuess:
			fs.Float64SliceVar(&o.InitialGuess, string(s), o.InitialGuess, "Initial guess x0, comma-separated")
		case SettingPivoting:
			fs.BoolVar(&o.Pivoting, string(s), o.Pivoting, "Use partial pivoting in the LU factorization")
		}
	}
}

// Complete loads the problem and resolves the output format.
func (o *SolveOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return errNoArguments
	}
	o.flags = cmd.Flags()

	var err error
	if o.Format, err = render.ParseFormat(o.Output); err != nil {
		return err
	}
	switch {
	case o.File == "" && o.Preset == "":
		return errNoInput
	case o.File != "" && o.Preset != "":
		return errManyInputs
	case o.File != "":
		o.Problem, err = problem.Load(o.File)
	default:
		o.Problem, err = problem.Preset(o.Preset)
	}

	return err
}

// Validate checks that the loaded problem suits the command.
func (o *SolveOptions) Validate(kind problem.Kind) error {
	if o.Problem.Kind != kind {
		return fmt.Errorf("%s is a %s problem, this command solves %s problems: %w",
			o.Problem.Name, o.Problem.Kind, kind, problem.ErrWrongKind)
	}

	return nil
}

// changed reports whether the setting was given by flag, environment or config.
func (o *SolveOptions) changed(s Setting) bool {
	return o.flags != nil && o.flags.Changed(string(s))
}

// SolverOptions returns the document's settings followed by explicit overrides.
func (o *SolveOptions) SolverOptions() []solver.Option {
	opts := o.Problem.Options()
	for _, s := range o.settings {
		if !o.changed(s) {
			continue
		}
		switch s {
		case SettingTolerance:
			opts = append(opts, solver.WithTolerance(o.Tolerance))
		case SettingMaxIterations:
			opts = append(opts, solver.WithMaxIterations(o.MaxIterations))
		case SettingRelaxation:
			opts = append(opts, solver.WithRelaxation(o.Relaxation))
		case SettingInitialGuess:
			if o.Problem.Kind == problem.KindLinear {
				opts = append(opts, solver.WithInitialGuess(o.InitialGuess))
			}
		case SettingPivoting:
			opts = append(opts, solver.WithPivoting(o.Pivoting))
		}
	}

	return opts
}

// StartingPoint is the Newton x0: the flag when given, else the document's.
func (o *SolveOptions) StartingPoint() []float64 {
	if o.changed(SettingInitialGuess) {
		return o.InitialGuess
	}

	return o.Problem.InitialGuess
}

// print writes a structured report; text output is handled by each command.
func (o *SolveOptions) print(v any) error {
	if o.Format == render.FormatJSON {
		return render.JSON(o.Out, v)
	}

	return render.YAML(o.Out, v)
}
