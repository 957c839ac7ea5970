// Package numsolve is a small workbench for solving dense systems and
// watching how each method gets to the answer.
//
// 🚀 What is numsolve?
//
//	A pure-Go library plus CLI that brings together:
//		• Direct solves: LU with or without partial pivoting (P·A = L·U)
//		• Stationary iterations: Jacobi, SOR, Gauss-Seidel
//		• Nonlinear systems: damped Newton-Raphson with residual and step criteria
//		• A full convergence history for every iterative run
//
// ✨ Why numsolve?
//
//   - Inspectable - every iterate, residual, step and Jacobian is recorded
//   - Typed outcomes - converged / not-converged / failed, never a stray panic
//   - Safe formulas - user equations are compiled into a closed sandbox
//
// Packages:
//
//	matrix/   Dense storage, validators, norms, determinant, LU kernels
//	solver/   SolveLU, Jacobi, SOR, GaussSeidel, Newton, Compare + options
//	formula/  sandboxed equations and Jacobians for Newton
//	problem/  YAML problem documents and built-in presets
//	render/   text tables, YAML and JSON reports
//	cli/      the numsolve command tree (cmd/numsolve)
//
// Quick example:
//
//	    ⎡ 4 −1  1⎤     ⎡12⎤
//	A = ⎢−1  4 −2⎥ b = ⎢−1⎥   →  x = (3, 1, 1)
//	    ⎣ 1 −2  4⎦     ⎣ 5⎦
//
//	numsolve jacobi --preset dominant-3x3
//
//	go install github.com/katalvlaran/numsolve/cmd/numsolve@latest
package numsolve
