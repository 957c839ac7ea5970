// SPDX-License-Identifier: MIT

package render

import (
	"math"

	"github.com/katalvlaran/numsolve/matrix"
	"github.com/katalvlaran/numsolve/solver"
)

// Entry is the serializable form of solver.HistoryEntry.
type Entry struct {
	Iteration    int         `json:"iteration" yaml:"iteration"`
	X            []float64   `json:"x" yaml:"x"`
	Residual     []float64   `json:"residual,omitempty" yaml:"residual,omitempty"`
	ResidualNorm *float64    `json:"residualNorm" yaml:"residualNorm"`
	StepNorm     float64     `json:"stepNorm,omitempty" yaml:"stepNorm,omitempty"`
	Step         []float64   `json:"step,omitempty" yaml:"step,omitempty"`
	Jacobian     [][]float64 `json:"jacobian,omitempty" yaml:"jacobian,omitempty"`
}

// Report is the serializable form of solver.Result.
type Report struct {
	Method       string    `json:"method" yaml:"method"`
	Status       string    `json:"status" yaml:"status"`
	Criterion    string    `json:"criterion,omitempty" yaml:"criterion,omitempty"`
	Error        string    `json:"error,omitempty" yaml:"error,omitempty"`
	Iterations   int       `json:"iterations" yaml:"iterations"`
	ResidualNorm *float64  `json:"residualNorm" yaml:"residualNorm"`
	Tolerance    float64   `json:"tolerance" yaml:"tolerance"`
	Relaxation   float64   `json:"relaxation,omitempty" yaml:"relaxation,omitempty"`
	Dominance    string    `json:"dominance,omitempty" yaml:"dominance,omitempty"`
	Solution     []float64 `json:"solution" yaml:"solution"`
	History      []Entry   `json:"history" yaml:"history"`
}

// LUReport is the serializable form of solver.LUResult.
type LUReport struct {
	Method       string      `json:"method" yaml:"method"`
	Pivoted      bool        `json:"pivoted" yaml:"pivoted"`
	Perm         []int       `json:"perm" yaml:"perm"`
	P            [][]float64 `json:"p" yaml:"p"`
	L            [][]float64 `json:"l" yaml:"l"`
	U            [][]float64 `json:"u" yaml:"u"`
	PermutedB    []float64   `json:"permutedB" yaml:"permutedB"`
	Y            []float64   `json:"y" yaml:"y"`
	X            []float64   `json:"x" yaml:"x"`
	ResidualNorm float64     `json:"residualNorm" yaml:"residualNorm"`
}

// ComparisonRow is one method of a compare run.
type ComparisonRow struct {
	Method       string    `json:"method" yaml:"method"`
	Status       string    `json:"status" yaml:"status"`
	Iterations   int       `json:"iterations" yaml:"iterations"`
	ResidualNorm *float64  `json:"residualNorm,omitempty" yaml:"residualNorm,omitempty"`
	Solution     []float64 `json:"solution,omitempty" yaml:"solution,omitempty"`
	Error        string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// finite maps NaN/Inf to nil so that JSON encoding cannot fail.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func rows(m *matrix.Dense) [][]float64 {
	if m == nil {
		return nil
	}

	return m.ToRows()
}

// NewReport converts a Result.
func NewReport(res *solver.Result) Report {
	r := Report{
		Method:       string(res.Method),
		Status:       res.Status.Kind.String(),
		Iterations:   res.Iterations,
		ResidualNorm: finite(res.ResidualNorm),
		Tolerance:    res.Tolerance,
		Relaxation:   res.Relaxation,
		Solution:     res.Solution,
		History:      make([]Entry, len(res.History)),
	}
	if res.Status.Kind == solver.StatusConverged {
		r.Criterion = res.Status.Criterion.String()
	}
	if err := res.Err(); err != nil {
		r.Error = err.Error()
	}
	if res.Dominance != solver.DominanceUnchecked {
		r.Dominance = res.Dominance.String()
	}
	for i, e := range res.History {
		r.History[i] = Entry{
			Iteration:    e.Iteration,
			X:            e.X,
			Residual:     e.Residual,
			ResidualNorm: finite(e.ResidualNorm),
			StepNorm:     e.StepNorm,
			Step:         e.Step,
			Jacobian:     rows(e.Jacobian),
		}
	}

	return r
}

// NewLUReport converts an LUResult.
func NewLUReport(res *solver.LUResult) LUReport {
	return LUReport{
		Method:       string(solver.MethodLU),
		Pivoted:      res.Pivoted,
		Perm:         res.Perm,
		P:            rows(res.P),
		L:            rows(res.L),
		U:            rows(res.U),
		PermutedB:    res.PermutedB,
		Y:            res.Y,
		X:            res.X,
		ResidualNorm: res.ResidualNorm,
	}
}

// NewComparison converts the outcomes of solver.Compare.
func NewComparison(outcomes []solver.Outcome) []ComparisonRow {
	out := make([]ComparisonRow, len(outcomes))
	for i, o := range outcomes {
		row := ComparisonRow{Method: string(o.Method), Solution: o.Solution()}
		switch {
		case o.LU != nil:
			row.Status = "solved"
			row.ResidualNorm = finite(o.LU.ResidualNorm)
		case o.Result != nil:
			row.Status = o.Result.Status.Kind.String()
			row.Iterations = o.Result.Iterations
			row.ResidualNorm = finite(o.Result.ResidualNorm)
		default:
			row.Status = "invalid"
		}
		if o.Err != nil {
			row.Error = o.Err.Error()
		}
		out[i] = row
	}

	return out
}
