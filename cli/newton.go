// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/numsolve/problem"
	"github.com/katalvlaran/numsolve/solver"
)

var (
	newtonLong = heredoc.Doc(`
		Solve F(x) = 0 with the damped Newton iteration.

		Equations are formulas over the declared variables. The Jacobian is
		taken from the document when given and approximated by central
		differences otherwise. Each step solves J·Δ = −F and moves
		x ← x + w·Δ. The run converges when ‖F(x)‖₂ or the step ‖x(k+1) − x(k)‖∞
		drops below the tolerance.

		Formulas may use + - * / ^ **, the constants pi and e, and the
		functions sin cos tan asin acos atan sinh cosh tanh exp log log10 sqrt
		pow hypot abs min max.`)

	newtonExample = heredoc.Doc(`
		# Solve the built-in 2x2 system
		%[1]s newton --preset newton-2x2

		# Start elsewhere and damp the steps
		%[1]s newton --preset newton-2x2 --initial-guess 1,1 --relaxation 0.5`)
)

// NewCmdNewton returns the newton command.
func NewCmdNewton(name string, streams IOStreams) *cobra.Command {
	o := NewSolveOptions(streams, SettingTolerance, SettingMaxIterations, SettingRelaxation, SettingInitialGuess)
	cmd := &cobra.Command{
		Use:     "newton (--file FILE | --preset NAME)",
		Short:   "Solve a nonlinear system with the damped Newton iteration",
		Long:    newtonLong,
		Example: fmt.Sprintf(newtonExample, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(problem.KindNonlinear); err != nil {
				return err
			}

			return RunNewton(o)
		},
	}
	o.AddFlags(cmd)

	return cmd
}

// RunNewton compiles the equations, solves and prints the history.
func RunNewton(o *SolveOptions) error {
	sys, err := o.Problem.NonlinearSystem()
	if err != nil {
		return err
	}
	if !sys.HasJacobian() {
		klog.V(2).InfoS("no jacobian formulas, using finite differences", "problem", o.Problem.Name)
	}
	res, err := solver.Newton(sys.F, sys.J, o.StartingPoint(), o.SolverOptions()...)
	if err != nil {
		return err
	}

	return o.printResult(res)
}
