// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at link time: -ldflags "-X github.com/katalvlaran/numsolve/cli.Version=v1.2.3".
var Version = "dev"

// NewCmdVersion returns the version command.
func NewCmdVersion(streams IOStreams) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(streams.Out, "numsolve %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
