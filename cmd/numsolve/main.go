// SPDX-License-Identifier: MIT

// Command numsolve solves small dense linear and nonlinear systems from YAML
// documents and prints the convergence history of every iterative method.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/numsolve/cli"
)

func main() {
	streams := cli.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}
	command := cli.NewCommand(filepath.Base(os.Args[0]), streams)
	err := command.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
