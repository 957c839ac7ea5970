// Package formula compiles user-written equations into the vector function F
// and Jacobian J consumed by solver.Newton.
//
// Formulas are evaluated by github.com/expr-lang/expr inside a closed
// environment: the declared variables, the constants pi and e, and a fixed
// table of math functions (sin cos tan asin acos atan sinh cosh tanh exp log
// log10 sqrt pow hypot). Anything else (undeclared names, member access on
// unknown values) is a compile-time error, so user input can never reach Go
// code outside this table. Both ^ and ** are exponentiation.
//
// Every formula is compiled once by NewSystem; F and J only run the compiled
// programs. When no Jacobian formulas are given, J falls back to central
// finite differences.
package formula
