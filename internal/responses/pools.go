// Package responses holds the canned reply pools and picks from them.
package responses

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fun-numbers/internal/random"
)

// Kind names a reply pool.
type Kind string

const (
	CalculationGreeting Kind = "calculation_greeting"
	CalculationFollowUp Kind = "calculation_followup"
	TryGame             Kind = "try_game"
	CalculationGoodbye  Kind = "calculation_goodbye"
	GameGreeting        Kind = "game_greeting"
	GameRestart         Kind = "game_restart"
	GameGoodbye         Kind = "game_goodbye"
	GameStateLost       Kind = "game_state_lost"
)

// Kinds lists every pool a table must provide.
var Kinds = []Kind{
	CalculationGreeting,
	CalculationFollowUp,
	TryGame,
	CalculationGoodbye,
	GameGreeting,
	GameRestart,
	GameGoodbye,
	GameStateLost,
}

//go:embed default.yaml
var defaultTable []byte

// Table maps each Kind to its ordered phrases.
type Table map[Kind][]string

// ErrEmptyPool is returned when a table is missing phrases for a Kind.
var ErrEmptyPool = errors.New("empty response pool")

// Default returns the built-in table.
func Default() Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("responses: embedded table is invalid: %v", err))
	}
	return t
}

// Parse decodes and validates a YAML table.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode response table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Load reads a table from path. Kinds the file omits keep their defaults.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read response table: %w", err)
	}

	var override Table
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("decode response table %s: %w", path, err)
	}

	t := Default()
	for kind, phrases := range override {
		t[kind] = phrases
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate checks that every Kind has at least one phrase.
func (t Table) Validate() error {
	for _, kind := range Kinds {
		if len(t[kind]) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyPool, kind)
		}
	}
	return nil
}

// Pick returns the phrase at index i of pool, wrapping out-of-range indexes.
func Pick(pool []string, i int) string {
	if len(pool) == 0 {
		return ""
	}
	i %= len(pool)
	if i < 0 {
		i += len(pool)
	}
	return pool[i]
}

// Random picks a phrase of kind using src.
func (t Table) Random(kind Kind, src random.Source) string {
	pool := t[kind]
	if len(pool) == 0 {
		return ""
	}
	return Pick(pool, src.Intn(len(pool)))
}
