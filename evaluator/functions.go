package evaluator

import (
	"math"
	"math/cmplx"
)

// Complex functions are computed with 128 bit precision and rounded
// afterwards.
type function func(complex128) complex128

var functions = map[string]function{
	"sin":   cmplx.Sin,
	"cos":   cmplx.Cos,
	"tan":   cmplx.Tan,
	"csc":   func(z complex128) complex128 { return 1 / cmplx.Sin(z) },
	"sec":   func(z complex128) complex128 { return 1 / cmplx.Cos(z) },
	"cot":   func(z complex128) complex128 { return 1 / cmplx.Tan(z) },
	"asin":  cmplx.Asin,
	"acos":  cmplx.Acos,
	"atan":  cmplx.Atan,
	"sinh":  cmplx.Sinh,
	"cosh":  cmplx.Cosh,
	"tanh":  cmplx.Tanh,
	"asinh": cmplx.Asinh,
	"acosh": cmplx.Acosh,
	"atanh": cmplx.Atanh,
	"inv":   func(z complex128) complex128 { return 1 / z },
	"conj":  cmplx.Conj,
	"exp":   cmplx.Exp,
	"ln":    cmplx.Log,
	"sqrt":  cmplx.Sqrt,
	"cbrt":  cbrt,
}

// cbrt is the principal cube root.
func cbrt(z complex128) complex128 {
	return cmplx.Rect(math.Cbrt(cmplx.Abs(z)), cmplx.Phase(z)/3)
}

// ApplyFunction applies a unary function to z. Unknown functions result in 0.
func ApplyFunction(name string, z complex64) complex64 {
	f, ok := functions[name]
	if !ok {
		T().Errorf("unknown function %q", name)
		return 0
	}
	return complex64(f(complex128(z)))
}

// ApplyOperator applies a binary operator to a and b. Unknown operators
// result in 0.
func ApplyOperator(op string, a, b complex64) complex64 {
	x, y := complex128(a), complex128(b)
	switch op {
	case "+":
		return complex64(x + y)
	case "-":
		return complex64(x - y)
	case "*":
		return complex64(x * y)
	case "/":
		return complex64(x / y)
	case "^":
		return complex64(cmplx.Pow(x, y))
	}
	T().Errorf("unknown operator %q", op)
	return 0
}
