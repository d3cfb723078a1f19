package calculator

import (
	"math"
	"regexp"
)

// MaxFactorial is the largest argument the single-operation path computes.
const MaxFactorial = 15

// SentinelTooLarge replaces factorials above MaxFactorial.
const SentinelTooLarge = "too large"

var (
	minusWord = regexp.MustCompile(`(?i)minus`)
	// Explicit "X by Y" phrasing always means X/Y.
	explicitDivision = regexp.MustCompile(`(?i)(divide\s+[0-9]+(\.[0-9]+)?\s+by\s+[0-9]+|[0-9]+(\.[0-9]+)?\s+divided\s+by\s+[0-9]+)`)
)

// Apply runs a single named operation. phrase is the user's raw input, used
// to disambiguate operand order for subtraction and division.
func Apply(op Operation, a, b float64, phrase string) Result {
	var r Result
	switch op {
	case OpAdd:
		r = number(a + b)
	case OpSubtract:
		r = number(subtract(a, b, phrase))
	case OpMultiply:
		r = number(multiply(a, b))
	case OpDivide, OpInverseDivide:
		r = number(divide(op, a, b, phrase))
	case OpSquareRoot:
		r = number(math.Sqrt(a))
	case OpPower:
		r = number(math.Pow(a, b))
	case OpFactorial:
		r = factorialResult(a)
	case OpSine:
		r = fixed(math.Sin(a), 4)
	case OpCosine:
		r = fixed(math.Cos(a), 4)
	case OpTangent:
		r = fixed(math.Tan(a), 4)
	case OpPercentage:
		r = percentage(a, b)
	default:
		r = unparseable()
	}
	r.Path = PathSingle
	return settle(r)
}

func subtract(a, b float64, phrase string) float64 {
	if minusWord.MatchString(phrase) {
		return a - b
	}
	return b - a
}

// A zero second operand usually means the recogniser found none.
func multiply(a, b float64) float64 {
	if b == 0 {
		b = 1
	}
	return a * b
}

func divide(op Operation, a, b float64, phrase string) float64 {
	if op == OpInverseDivide && !explicitDivision.MatchString(phrase) {
		return b / a
	}
	return a / b
}

func percentage(a, b float64) Result {
	if b == 0 {
		return fixed(a/100, 2)
	}
	return fixed(a*b/100, 2)
}

func factorialResult(n float64) Result {
	if n > MaxFactorial {
		return sentinel(SentinelTooLarge)
	}
	v, ok := factorial(n, MaxFactorial)
	if !ok {
		return unparseable()
	}
	return number(v)
}

// factorial computes n! for integers 0 <= n <= limit.
func factorial(n float64, limit int) (float64, bool) {
	if n < 0 || n != math.Trunc(n) || n > float64(limit) {
		return 0, false
	}
	result := 1.0
	for i := 2; i <= int(n); i++ {
		result *= float64(i)
	}
	return result, true
}
