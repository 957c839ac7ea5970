// SPDX-License-Identifier: MIT

package formula

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// constants visible to every formula.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// unary and binary hold the registered math table.
var (
	unary = map[string]func(float64) float64{
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"exp":   math.Exp,
		"log":   math.Log,
		"log10": math.Log10,
		"sqrt":  math.Sqrt,
	}
	binary = map[string]func(float64, float64) float64{
		"pow":   math.Pow,
		"hypot": math.Hypot,
	}
)

// Functions returns the names of the registered math functions.
func Functions() []string {
	names := make([]string, 0, len(unary)+len(binary))
	for n := range unary {
		names = append(names, n)
	}
	for n := range binary {
		names = append(names, n)
	}

	return names
}

// reserved reports whether name is taken by a constant or a function.
func reserved(name string) bool {
	if _, ok := constants[name]; ok {
		return true
	}
	if _, ok := unary[name]; ok {
		return true
	}
	_, ok := binary[name]

	return ok
}

// functionOptions registers the math table with the expression compiler.
func functionOptions() []expr.Option {
	opts := make([]expr.Option, 0, len(unary)+len(binary))
	for name, fn := range unary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 1 {
				return nil, fmt.Errorf("%s: got %d arguments, want 1: %w", name, len(params), ErrArity)
			}
			v, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return fn(v), nil
		}))
	}
	for name, fn := range binary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			if len(params) != 2 {
				return nil, fmt.Errorf("%s: got %d arguments, want 2: %w", name, len(params), ErrArity)
			}
			a, err := toFloat(params[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			b, err := toFloat(params[1])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}

			return fn(a, b), nil
		}))
	}

	return opts
}

// toFloat converts the numeric kinds the expression VM produces.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case int32:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%v (%T): %w", v, v, ErrNonNumeric)
	}
}
