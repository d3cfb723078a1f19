package calculator

import (
	"fmt"
	"math"
	"strconv"

	"fun-numbers/internal/session"
)

// Outcome classifies a calculation result.
type Outcome string

const (
	OutcomeNumber      Outcome = "number"
	OutcomeSentinel    Outcome = "sentinel"
	OutcomeTooLong     Outcome = "too_long"
	OutcomeUnparseable Outcome = "unparseable"
)

// Path records which engine produced a result.
type Path string

const (
	PathSingle  Path = "single"
	PathCascade Path = "cascade"
)

// TooLongMessage is returned verbatim for oversized input.
const TooLongMessage = "Sorry, the input is too long"

// Result is the outcome of one calculation. Failures are data, never errors.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Path    Path    `json:"path"`
	Value   float64 `json:"value"`
	// Display is the rendered value: fixed decimals, a sentinel, or the
	// shortest number form.
	Display string `json:"display,omitempty"`
}

func number(v float64) Result {
	return Result{Outcome: OutcomeNumber, Value: v}
}

func fixed(v float64, decimals int) Result {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return number(v)
	}
	display := strconv.FormatFloat(v, 'f', decimals, 64)
	rounded, _ := strconv.ParseFloat(display, 64)
	return Result{Outcome: OutcomeNumber, Value: rounded, Display: display}
}

func sentinel(s string) Result {
	return Result{Outcome: OutcomeSentinel, Display: s}
}

func unparseable() Result {
	return Result{Outcome: OutcomeUnparseable}
}

func tooLong() Result {
	return Result{Outcome: OutcomeTooLong}
}

// settle turns non-finite numbers into unparseable results and fills Display.
func settle(r Result) Result {
	if r.Outcome != OutcomeNumber {
		return r
	}
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return Result{Outcome: OutcomeUnparseable, Path: r.Path}
	}
	if r.Display == "" {
		r.Display = session.FormatNumber(r.Value)
	}
	return r
}

// OK reports whether the result carries an answer.
func (r Result) OK() bool {
	return r.Outcome == OutcomeNumber || r.Outcome == OutcomeSentinel
}

// Text renders the user-facing reply. phrase is echoed on failure.
func (r Result) Text(phrase string) string {
	switch r.Outcome {
	case OutcomeNumber, OutcomeSentinel:
		return "The answer is " + r.Display
	case OutcomeTooLong:
		return TooLongMessage
	default:
		return fmt.Sprintf("Unable to do %s", phrase)
	}
}
