// Package session converts the small state fields exchanged with the
// platform's context store. The store is untyped: values arrive as strings,
// JSON numbers or not at all, and are always written back as strings.
package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing session field")
	// ErrInvalidField is returned when a field cannot be parsed.
	ErrInvalidField = errors.New("invalid session field")
)

// Fields is a snapshot of one context's parameters. It is never mutated by
// the readers below.
type Fields map[string]any

// Has reports whether key is present and non-empty.
func (f Fields) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

// Number reads a finite float.
func (f Fields) Number(key string) (float64, error) {
	if !f.Has(key) {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return ParseNumber(f[key])
}

// Counter reads an integer counter.
func (f Fields) Counter(key string) (int, error) {
	if !f.Has(key) {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return ParseCounter(f[key])
}

// String reads a trimmed string value; absent keys yield "".
func (f Fields) String(key string) string {
	if !f.Has(key) {
		return ""
	}
	return strings.TrimSpace(cast.ToString(f[key]))
}

// ParseNumber converts an untyped value to a finite float64.
func ParseNumber(v any) (float64, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: non-finite value %v", ErrInvalidField, v)
	}
	return n, nil
}

// ParseCounter converts an untyped value to an int. Fractional values are
// rejected rather than truncated.
func ParseCounter(v any) (int, error) {
	n, err := ParseNumber(v)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("%w: counter %v is not an integer", ErrInvalidField, v)
	}
	return cast.ToIntE(n)
}

// FormatNumber renders v the way the platform displays numbers: integers
// without a decimal point, other values in their shortest form, and an
// exponent only for very large or very small magnitudes.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCounter renders a counter for storage.
func FormatCounter(n int) string {
	return strconv.Itoa(n)
}
