// Package solver provides direct and iterative solvers for small dense linear
// systems and a damped Newton-Raphson solver for nonlinear systems F(x) = 0.
//
// Overview:
//
//   - SolveLU factors A (with or without partial pivoting) and solves by forward
//     and back substitution, returning every intermediate artifact (P, L, U, P·b, y, x).
//   - Jacobi, SOR and GaussSeidel share one stationary-iteration skeleton and
//     differ only in how a sweep updates x.
//   - Newton solves J(x_k)·Δ = −F(x_k) by LU with partial pivoting at each step
//     and moves x by w·Δ, where w is the damping factor.
//
// When to use:
//
//   - SolveLU for any well-conditioned square system; it is exact up to rounding.
//   - Jacobi/SOR for diagonally dominant systems, or to study convergence: every
//     iterative solver records a full convergence history.
//   - Newton for square nonlinear systems with an analytic (or user-supplied) Jacobian.
//
// Key features:
//
//   - Functional options (WithTolerance, WithMaxIterations, WithRelaxation, ...)
//     resolved over documented defaults.
//   - Immutable results: every history entry is a private snapshot.
//   - Exhausting the iteration budget is not an error: the Result carries
//     StatusNotConverged and the last iterate.
//
// Stopping rules:
//
//   - Linear iterative solvers stop the first time ‖A·x_k − b‖₂ < tolerance.
//     At least one sweep always runs, even when x₀ already satisfies the test.
//   - Newton stops when ‖F(x_k)‖₂ < tolerance (criterion residual) or, failing
//     that, when ‖x_k − x_{k−1}‖∞ < tolerance (criterion step).
//
// Error handling:
//
//   - *ValidationError (error return, no Result): ErrBadTolerance,
//     ErrBadMaxIterations, ErrBadRelaxation, ErrBadInitialGuess, ErrNilFunction,
//     or wrapped matrix sentinels (ErrNonSquare, ErrDimensionMismatch, ErrNaNInf,
//     ErrSingular when |det A| < 1e-12).
//   - *NumericalError (Result.Status.Err, history kept): ErrZeroDiagonal with the
//     row index, ErrDiverged, ErrSingularJacobian, ErrFunctionFailure.
//     SolveLU has no partial result and returns it as the error (ErrZeroPivot).
//
// Logging: klog at V(4) for termination and V(5) per iteration.
//
// Complexity:
//
//   - SolveLU: O(n^3). One sweep: O(n^2). One Newton step: O(n^3) plus the cost of F and J.
//   - History memory: O(k·n) for linear solvers, O(k·n^2) for Newton (Jacobians are kept).
package solver
