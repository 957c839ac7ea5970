// SPDX-License-Identifier: MIT

// Package cli builds the numsolve command tree.
//
// Every solving command follows the same Complete → Validate → Run flow:
// Complete loads the problem document (file or preset) and resolves the output
// format, Validate checks the document kind against the command, Run invokes
// exactly one solver and renders its result.
//
// Settings are resolved with the precedence
//
//	command-line flag > NUMSOLVE_* environment > --config file > problem document > solver default
package cli

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables that override flags,
// e.g. NUMSOLVE_MAX_ITERATIONS for --max-iterations.
const EnvPrefix = "NUMSOLVE"

// IOStreams holds the standard streams a command writes to.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

var rootLong = heredoc.Doc(`
	Solve small dense systems and inspect how each method gets there.

	Linear systems A·x = b are solved directly (LU, with or without partial
	pivoting) or iteratively (Jacobi, SOR, Gauss-Seidel). Nonlinear systems
	F(x) = 0 are solved with a damped Newton iteration. Iterative commands print
	the full convergence history.

	Problems are YAML documents given with --file, or one of the built-in
	presets (see "presets"). Any flag can also be set through the environment
	(NUMSOLVE_TOLERANCE, NUMSOLVE_MAX_ITERATIONS, ...) or a --config file.`)

// NewCommand returns the root command. name is the binary name used in help texts.
func NewCommand(name string, streams IOStreams) *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           name,
		Short:         "Direct and iterative solvers for small dense systems",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadSettings(v, configFile, cmd.Flags())
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML/JSON/TOML file with default flag values (keys are flag names)")
	logFlags := goflag.NewFlagSet(name, goflag.ContinueOnError)
	klog.InitFlags(logFlags)
	cmd.PersistentFlags().AddGoFlagSet(logFlags)

	cmd.AddCommand(
		NewCmdLU(name, streams),
		NewCmdJacobi(name, streams),
		NewCmdSOR(name, streams),
		NewCmdGaussSeidel(name, streams),
		NewCmdNewton(name, streams),
		NewCmdCompare(name, streams),
		NewCmdPresets(name, streams),
		NewCmdVersion(streams),
	)

	return cmd
}

// loadSettings fills every flag the user did not set explicitly from the
// environment or the config file, in that order.
func loadSettings(v *viper.Viper, configFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", configFile, err)
		}
	}

	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		if err := flags.Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
			errs = append(errs, fmt.Errorf("--%s from environment or config: %w", f.Name, err))
		}
	})

	return errors.Join(errs...)
}

// flagValue renders a viper value in the syntax pflag parses; lists from a
// config file become comma-separated.
func flagValue(val any) string {
	list, ok := val.([]any)
	if !ok {
		return fmt.Sprint(val)
	}
	parts := make([]string, len(list))
	for i, item := range list {
		parts[i] = fmt.Sprint(item)
	}

	return strings.Join(parts, ",")
}
