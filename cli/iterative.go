// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/problem"
	"github.com/katalvlaran/numsolve/render"
	"github.com/katalvlaran/numsolve/solver"
)

type linearSolver func(matrix.Matrix, []float64, ...solver.Option) (*solver.Result, error)

var (
	jacobiLong = heredoc.Doc(`
		Solve A·x = b with the Jacobi iteration.

		Every component of x(k+1) is computed from x(k) only. Before iterating
		the matrix is checked for strict diagonal dominance; the outcome is
		reported but never stops the run. The iteration stops when the residual
		norm ‖A·x − b‖₂ drops below the tolerance, when the budget is spent, or
		when a diagonal element is numerically zero.`)

	sorLong = heredoc.Doc(`
		Solve A·x = b with successive over-relaxation.

		Components are updated in order and immediately reused, then blended
		with the previous value: x_i ← (1−w)·x_i + w·(Gauss-Seidel value).
		w = 1 is Gauss-Seidel; w in (1, 2) over-relaxes, w in (0, 1) under-relaxes.`)

	gaussSeidelLong = heredoc.Doc(`
		Solve A·x = b with the Gauss-Seidel iteration (SOR with w = 1).

		Any relaxation factor in the problem document is ignored.`)

	iterativeExample = heredoc.Doc(`
		# Iterate on the built-in diagonally dominant system
		%[1]s %[2]s --preset dominant-3x3

		# Tighter tolerance and a smaller budget, from the environment
		NUMSOLVE_TOLERANCE=1e-10 NUMSOLVE_MAX_ITERATIONS=20 %[1]s %[2]s --preset dominant-3x3

		# Start from a custom guess and print the history as YAML
		%[1]s %[2]s --file system.yaml --initial-guess 1,1,1 -o yaml`)
)

// NewCmdJacobi returns the jacobi command.
func NewCmdJacobi(name string, streams IOStreams) *cobra.Command {
	return newIterativeCommand(name, "jacobi", "Solve a linear system with the Jacobi iteration", jacobiLong, streams, solver.Jacobi,
		SettingTolerance, SettingMaxIterations, SettingInitialGuess)
}

// NewCmdSOR returns the sor command.
func NewCmdSOR(name string, streams IOStreams) *cobra.Command {
	return newIterativeCommand(name, "sor", "Solve a linear system with successive over-relaxation", sorLong, streams, solver.SOR,
		SettingTolerance, SettingMaxIterations, SettingRelaxation, SettingInitialGuess)
}

// NewCmdGaussSeidel returns the gauss-seidel command.
func NewCmdGaussSeidel(name string, streams IOStreams) *cobra.Command {
	return newIterativeCommand(name, "gauss-seidel", "Solve a linear system with the Gauss-Seidel iteration", gaussSeidelLong, streams, solver.GaussSeidel,
		SettingTolerance, SettingMaxIterations, SettingInitialGuess)
}

func newIterativeCommand(name, use, short, long string, streams IOStreams, solve linearSolver, settings ...Setting) *cobra.Command {
	o := NewSolveOptions(streams, settings...)
	cmd := &cobra.Command{
		Use:     use + " (--file FILE | --preset NAME)",
		Short:   short,
		Long:    long,
		Example: fmt.Sprintf(iterativeExample, name, use),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(problem.KindLinear); err != nil {
				return err
			}

			return RunIterative(o, solve)
		},
	}
	o.AddFlags(cmd)

	return cmd
}

// RunIterative solves the loaded problem with one stationary method and
// prints the history. A failed run is printed first and then returned as error;
// running out of iterations is a normal outcome.
func RunIterative(o *SolveOptions, solve linearSolver) error {
	a, b, err := o.Problem.LinearSystem()
	if err != nil {
		return err
	}
	res, err := solve(a, b, o.SolverOptions()...)
	if err != nil {
		return err
	}

	return o.printResult(res)
}

func (o *SolveOptions) printResult(res *solver.Result) error {
	var err error
	if o.Format == render.FormatText {
		err = render.History(o.Out, res)
	} else {
		err = o.print(render.NewReport(res))
	}
	if err != nil {
		return err
	}

	return res.Err()
}
