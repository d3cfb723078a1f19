package responses

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fixedSource int

func (f fixedSource) Intn(n int) int { return int(f) % n }

func TestDefaultTableHasEveryKind(t *testing.T) {
	table := Default()

	for _, kind := range Kinds {
		if len(table[kind]) == 0 {
			t.Errorf("kind %s has no phrases", kind)
		}
	}

	if got := table[GameGreeting][0]; got != "Sure!, I'm in. Choose a secret number" {
		t.Fatalf("unexpected first game greeting %q", got)
	}
}

func TestPick(t *testing.T) {
	pool := []string{"a", "b", "c"}

	tests := []struct {
		i    int
		want string
	}{
		{0, "a"},
		{2, "c"},
		{3, "a"},
		{-1, "c"},
	}
	for _, tc := range tests {
		if got := Pick(pool, tc.i); got != tc.want {
			t.Errorf("Pick(%d) = %q, want %q", tc.i, got, tc.want)
		}
	}

	if got := Pick(nil, 1); got != "" {
		t.Fatalf("expected empty phrase from empty pool, got %q", got)
	}
}

func TestRandomUsesSource(t *testing.T) {
	table := Default()

	got := table.Random(CalculationGreeting, fixedSource(1))
	if got != "Okay then, what should I calculate?" {
		t.Fatalf("unexpected phrase %q", got)
	}
}

func TestParseRejectsMissingPool(t *testing.T) {
	_, err := Parse([]byte("calculation_greeting: [hi]\n"))
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.yaml")
	if err := os.WriteFile(path, []byte("game_goodbye:\n  - Bye now\n"), 0o600); err != nil {
		t.Fatalf("writing table: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := table[GameGoodbye]; len(got) != 1 || got[0] != "Bye now" {
		t.Fatalf("expected overridden goodbye pool, got %v", got)
	}
	if len(table[GameGreeting]) != 3 {
		t.Fatalf("expected default greeting pool to survive, got %v", table[GameGreeting])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
