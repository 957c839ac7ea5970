// Package matrix offers the dense linear-algebra layer shared by the solvers.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Validators (ValidateSystem, ValidateNonSingular, IsDiagonallyDominant)
//     that every solver runs before touching data.
//   - Kernels: MatVec, Mul, Residual, Det, Norm2/NormInf/DistInf,
//     PermutationMatrix/Permute.
//   - LU (no pivoting) and LUP (partial pivoting) factorizations, forward and
//     back substitution, and Solve for one-shot dense solves.
//
// Matrices here are small and dense (2 to 10 unknowns is the intended range);
// nothing in this package is sparse-aware or parallel.
//
// See the examples in this package and in solver for usage patterns.
package matrix
