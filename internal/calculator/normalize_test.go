package calculator

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"what is 3 plus 4", "3+4"},
		{"What is 10 divided by 2?", "10/2"},
		{"9 minus 4", "9-4"},
		{"6 times 7", "6*7"},
		{"6 multiplied by 7", "6*7"},
		{"3 addition 4", "3+4"},
		{"5 factorial", "5!"},
		{"factorial 5", "5!"},
		{"2 plus factorial 3", "2+3!"},
		{"calculate 3.5 plus 1.5.", "3.5+1.5"},
		{"4 plus", "4"},
		{"find the value of 8 over 2", "8/2"},
		{"times 6 plus", "6"},
		{"3 plus\n* 4", "3+\n*4"},
	}

	for _, tc := range tests {
		t.Run(tc.phrase, func(t *testing.T) {
			got, err := Normalize(tc.phrase)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.phrase, got, tc.want)
			}
		})
	}
}

func TestNormalizeLengthCap(t *testing.T) {
	atCap := strings.Repeat("1", MaxPhraseLength)
	if _, err := Normalize(atCap); err != nil {
		t.Fatalf("expected phrase of %d chars to be accepted, got %v", MaxPhraseLength, err)
	}

	over := strings.Repeat("1", MaxPhraseLength+1)
	if _, err := Normalize(over); !errors.Is(err, ErrInputTooLong) {
		t.Fatalf("expected ErrInputTooLong, got %v", err)
	}
}

func TestPathologicalPhrasesStayBounded(t *testing.T) {
	units := []string{"+", "plus", "-+", "!", "1+", "plusminus", "divided by ", "..", "? "}

	for _, unit := range units {
		phrase := strings.Repeat(unit, MaxPhraseLength/len(unit))
		r := Cascade(phrase)
		if r.Outcome == OutcomeTooLong {
			t.Fatalf("phrase of %d chars unexpectedly rejected", len(phrase))
		}
		if r.Outcome != OutcomeNumber && r.Outcome != OutcomeUnparseable {
			t.Fatalf("unexpected outcome %s for %q", r.Outcome, unit)
		}
	}
}

func BenchmarkNormalizeAtCap(b *testing.B) {
	phrase := strings.Repeat("plus", MaxPhraseLength/4)
	for i := 0; i < b.N; i++ {
		_, _ = Normalize(phrase)
	}
}
