// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/numsolve/solver"
)

// formatFloat prints v with up to 10 significant digits.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func formatVec(v []float64) string {
	if v == nil {
		return "-"
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = formatFloat(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatNorm(p *float64) string {
	if p == nil {
		return "NaN"
	}

	return formatFloat(*p)
}

// History writes the summary and the per-iteration table of an iterative run.
func History(out io.Writer, res *solver.Result) error {
	r := NewReport(res)
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)

	fmt.Fprintf(w, "Method:\t%s\n", r.Method)
	fmt.Fprintf(w, "Status:\t%s\n", r.Status)
	if r.Criterion != "" {
		fmt.Fprintf(w, "Criterion:\t%s\n", r.Criterion)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "Error:\t%s\n", r.Error)
	}
	if r.Dominance != "" {
		fmt.Fprintf(w, "Dominance:\t%s\n", r.Dominance)
	}
	fmt.Fprintf(w, "Iterations:\t%d\n", r.Iterations)
	fmt.Fprintf(w, "Tolerance:\t%s\n", formatFloat(r.Tolerance))
	if r.Relaxation != 0 {
		fmt.Fprintf(w, "Relaxation:\t%s\n", formatFloat(r.Relaxation))
	}
	fmt.Fprintf(w, "Residual:\t%s\n", formatNorm(r.ResidualNorm))
	fmt.Fprintf(w, "Solution:\t%s\n", formatVec(r.Solution))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ITER\tRESIDUAL\tSTEP\tX\n")
	for _, e := range r.History {
		step := "-"
		if e.Iteration > 0 {
			step = formatFloat(e.StepNorm)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Iteration, formatNorm(e.ResidualNorm), step, formatVec(e.X))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if res.Method != solver.MethodNewton {
		return nil
	}

	return newtonDetail(out, r.History)
}

// newtonDetail prints F(x), J(x) and Δ of every Newton entry below the table.
func newtonDetail(out io.Writer, history []Entry) error {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	for _, e := range history {
		fmt.Fprintf(w, "\nIteration %d\n", e.Iteration)
		fmt.Fprintf(w, "x:\t%s\n", formatVec(e.X))
		fmt.Fprintf(w, "F(x):\t%s\n", formatVec(e.Residual))
		writeMatrix(w, "J(x):", e.Jacobian)
		if e.Step != nil {
			fmt.Fprintf(w, "Δ:\t%s\n", formatVec(e.Step))
		}
	}

	return w.Flush()
}

// LU writes the factorization blocks and the solution.
func LU(out io.Writer, res *solver.LUResult) error {
	r := NewLUReport(res)
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)

	fmt.Fprintf(w, "Method:\t%s\n", r.Method)
	fmt.Fprintf(w, "Pivoting:\t%t\n", r.Pivoted)
	fmt.Fprintf(w, "Permutation:\t%v\n", r.Perm)
	writeMatrix(w, "P:", r.P)
	writeMatrix(w, "L:", r.L)
	writeMatrix(w, "U:", r.U)
	fmt.Fprintf(w, "P·b:\t%s\n", formatVec(r.PermutedB))
	fmt.Fprintf(w, "y:\t%s\n", formatVec(r.Y))
	fmt.Fprintf(w, "x:\t%s\n", formatVec(r.X))
	fmt.Fprintf(w, "Residual:\t%s\n", formatFloat(r.ResidualNorm))

	return w.Flush()
}

// writeMatrix prints the label on the first row only.
func writeMatrix(w io.Writer, label string, m [][]float64) {
	for i, row := range m {
		if i == 0 {
			fmt.Fprintf(w, "%s\t%s\n", label, formatVec(row))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", "", formatVec(row))
	}
}

// Comparison writes one line per method of a compare run.
func Comparison(out io.Writer, outcomes []solver.Outcome) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "METHOD\tSTATUS\tITER\tRESIDUAL\tSOLUTION\n")
	for _, r := range NewComparison(outcomes) {
		residual := "-"
		if r.ResidualNorm != nil {
			residual = formatFloat(*r.ResidualNorm)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", r.Method, r.Status, r.Iterations, residual, formatVec(r.Solution))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, r := range NewComparison(outcomes) {
		if r.Error != "" {
			fmt.Fprintf(out, "%s: %s\n", r.Method, r.Error)
		}
	}

	return nil
}
