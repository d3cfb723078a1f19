package calculator

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"
)

// maxEvalFactorial is the largest n whose factorial fits in a float64.
const maxEvalFactorial = 170

var postfixFactorial = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)!`)

// arithmeticOnly matches the strings Evaluate accepts. govaluate also parses
// bitwise, comparison, ternary and date-string syntax, none of which is
// arithmetic.
var arithmeticOnly = regexp.MustCompile(`^[0-9.+\-*/!()%^]+$`)

var evalFunctions = map[string]govaluate.ExpressionFunction{
	"fact": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("fact expects 1 argument, got %d", len(args))
		}
		n, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("fact: non-numeric argument %v", args[0])
		}
		v, ok := factorial(n, maxEvalFactorial)
		if !ok {
			return nil, fmt.Errorf("fact: unsupported argument %v", n)
		}
		return v, nil
	},
}

// Evaluate computes a canonical arithmetic string. It supports + - * / % and
// ^ (power) with the usual precedence and postfix ! on number literals. ok is false when
// the string cannot be parsed or does not yield a finite number.
func Evaluate(canonical string) (value float64, ok bool) {
	if !arithmeticOnly.MatchString(canonical) {
		return 0, false
	}

	// govaluate panics on some malformed token streams.
	defer func() {
		if recover() != nil {
			value, ok = 0, false
		}
	}()

	expr, err := govaluate.NewEvaluableExpressionWithFunctions(
		postfixFactorial.ReplaceAllString(strings.ReplaceAll(canonical, "^", "**"), "fact($1)"),
		evalFunctions,
	)
	if err != nil {
		return 0, false
	}

	out, err := expr.Evaluate(nil)
	if err != nil {
		return 0, false
	}

	v, isFloat := out.(float64)
	if !isFloat || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
