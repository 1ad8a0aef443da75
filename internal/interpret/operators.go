package interpret

import "math"

type binaryOperator struct {
	precedence int
	// associative operators may absorb an equal-precedence right operand of
	// the same symbol without parentheses.
	associative bool
	apply       func(op1, op2 float64) float64
}

var binaryOperators = map[rune]binaryOperator{
	'+': {precedence: 1, associative: true, apply: func(op1, op2 float64) float64 { return op1 + op2 }},
	'-': {precedence: 1, apply: func(op1, op2 float64) float64 { return op1 - op2 }},
	'*': {precedence: 2, associative: true, apply: func(op1, op2 float64) float64 { return op1 * op2 }},
	'/': {precedence: 2, apply: func(op1, op2 float64) float64 { return op1 / op2 }},
	'%': {precedence: 2, apply: math.Mod},
	'^': {precedence: 3, apply: math.Pow},
}

// Degree-based trigonometry, like a pocket calculator.
var functions = map[string]func(float64) float64{
	"raiz": math.Sqrt,
	"sen":  func(deg float64) float64 { return math.Sin(degToRad(deg)) },
	"cos":  func(deg float64) float64 { return math.Cos(degToRad(deg)) },
	"tg":   func(deg float64) float64 { return math.Tan(degToRad(deg)) },
	"log":  math.Log10,
}

var alias = map[string]string{
	"sqrt": "raiz",
	"sin":  "sen",
	"tan":  "tg",
}

func lookupFunction(name string) (func(float64) float64, bool) {
	if canonical, ok := alias[name]; ok {
		name = canonical
	}
	fn, ok := functions[name]
	return fn, ok
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
