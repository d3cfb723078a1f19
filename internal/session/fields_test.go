package session

import (
	"errors"
	"math"
	"testing"
)

func TestFieldsNumber(t *testing.T) {
	fields := Fields{
		"string":  "12.5",
		"padded":  " 3 ",
		"json":    float64(7),
		"empty":   "",
		"garbage": "twelve",
		"nan":     "NaN",
	}

	tests := []struct {
		key     string
		want    float64
		wantErr error
	}{
		{key: "string", want: 12.5},
		{key: "padded", want: 3},
		{key: "json", want: 7},
		{key: "empty", wantErr: ErrMissingField},
		{key: "absent", wantErr: ErrMissingField},
		{key: "garbage", wantErr: ErrInvalidField},
		{key: "nan", wantErr: ErrInvalidField},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := fields.Number(tc.key)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Number(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestFieldsCounter(t *testing.T) {
	fields := Fields{"a": "3", "b": float64(4), "c": "2.5", "d": "2.0"}

	if got, err := fields.Counter("a"); err != nil || got != 3 {
		t.Fatalf("Counter(a) = %d, %v; want 3", got, err)
	}
	if got, err := fields.Counter("b"); err != nil || got != 4 {
		t.Fatalf("Counter(b) = %d, %v; want 4", got, err)
	}
	if _, err := fields.Counter("c"); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("Counter(c): expected ErrInvalidField, got %v", err)
	}
	if got, err := fields.Counter("d"); err != nil || got != 2 {
		t.Fatalf("Counter(d) = %d, %v; want 2", got, err)
	}
}

func TestFieldsString(t *testing.T) {
	fields := Fields{"op": " add ", "nil": nil}

	if got := fields.String("op"); got != "add" {
		t.Fatalf("String(op) = %q, want %q", got, "add")
	}
	if got := fields.String("nil"); got != "" {
		t.Fatalf("String(nil) = %q, want empty", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "-7"},
		{0.2, "0.2"},
		{1307674368000, "1307674368000"},
		{1e21, "1e+21"},
		{math.Inf(1), "Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tc := range tests {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatThenParseNumberPreservesValue(t *testing.T) {
	for _, v := range []float64{0, 1, -42, 0.125, 12.75, -3.5} {
		got, err := ParseNumber(FormatNumber(v))
		if err != nil {
			t.Fatalf("ParseNumber(FormatNumber(%v)): %v", v, err)
		}
		if got != v {
			t.Fatalf("expected %v after storage, got %v", v, got)
		}
	}
}
