// Package problem reads solver inputs from YAML documents.
//
// A document describes either a linear system (kind: linear, fields a and b)
// or a nonlinear one (kind: nonlinear, fields variables, equations and
// optionally jacobian), plus optional solver settings (tolerance,
// maxIterations, relaxation, pivoting, initialGuess). Unknown fields are
// rejected. A few documents ship with the package as presets.
package problem
