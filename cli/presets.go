// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/numsolve/problem"
	"github.com/katalvlaran/numsolve/render"
)

var presetsExample = heredoc.Doc(`
	# List the built-in problems
	%[1]s presets

	# Print one as a starting point for your own document
	%[1]s presets newton-2x2 > mine.yaml`)

// PresetsOptions lists or prints built-in problem documents.
type PresetsOptions struct {
	Name   string
	Output string

	IOStreams
}

// NewCmdPresets returns the presets command.
func NewCmdPresets(name string, streams IOStreams) *cobra.Command {
	o := &PresetsOptions{Output: string(render.FormatYAML), IOStreams: streams}
	cmd := &cobra.Command{
		Use:       "presets [NAME]",
		Short:     "List built-in problems or print one",
		Example:   fmt.Sprintf(presetsExample, name),
		ValidArgs: problem.PresetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(args); err != nil {
				return err
			}

			return o.Run()
		},
	}
	cmd.Flags().StringVarP(&o.Output, "output", "o", o.Output, "Format of a printed document, yaml or json")

	return cmd
}

// Complete takes the optional preset name.
func (o *PresetsOptions) Complete(args []string) error {
	switch len(args) {
	case 0:
	case 1:
		o.Name = args[0]
	default:
		return errors.New("at most one preset name expected")
	}

	return nil
}

// Run lists every preset, or prints the named one.
func (o *PresetsOptions) Run() error {
	if o.Name == "" {
		w := tabwriter.NewWriter(o.Out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "NAME\tKIND\tDESCRIPTION\n")
		for _, n := range problem.PresetNames() {
			p, err := problem.Preset(n)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", n, p.Kind, p.Description)
		}

		return w.Flush()
	}

	p, err := problem.Preset(o.Name)
	if err != nil {
		return err
	}
	switch f, err := render.ParseFormat(o.Output); {
	case err != nil:
		return err
	case f == render.FormatJSON:
		return render.JSON(o.Out, p)
	default:
		return render.YAML(o.Out, p)
	}
}
