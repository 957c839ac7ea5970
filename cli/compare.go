// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numsolve/problem"
	"github.com/katalvlaran/numsolve/render"
	"github.com/katalvlaran/numsolve/solver"
)

var (
	compareLong = heredoc.Doc(`
		Solve one linear system with LU, Jacobi and SOR and print a summary row
		per method. All methods share the same settings; a method that fails is
		reported in its row and does not stop the others.`)

	compareExample = heredoc.Doc(`
		# Compare all methods on the built-in dominant system
		%[1]s compare --preset dominant-3x3

		# How much does over-relaxation buy?
		%[1]s compare --preset dominant-3x3 --relaxation 1.1`)
)

// NewCmdCompare returns the compare command.
func NewCmdCompare(name string, streams IOStreams) *cobra.Command {
	o := NewSolveOptions(streams, SettingTolerance, SettingMaxIterations, SettingRelaxation, SettingInitialGuess, SettingPivoting)
	cmd := &cobra.Command{
		Use:     "compare (--file FILE | --preset NAME)",
		Short:   "Run every linear method on the same system",
		Long:    compareLong,
		Example: fmt.Sprintf(compareExample, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(problem.KindLinear); err != nil {
				return err
			}

			return RunCompare(o)
		},
	}
	o.AddFlags(cmd)

	return cmd
}

// RunCompare runs solver.Compare and prints one row per method.
func RunCompare(o *SolveOptions) error {
	a, b, err := o.Problem.LinearSystem()
	if err != nil {
		return err
	}
	outcomes := solver.Compare(a, b, o.SolverOptions()...)
	if o.Format == render.FormatText {
		return render.Comparison(o.Out, outcomes)
	}

	return o.print(render.NewComparison(outcomes))
}
