// Package game implements the "guess the secret number" game: five
// instructions the player applies to a number only they know, then a reveal
// of the number they should have arrived at.
package game

import (
	"errors"
	"fmt"

	"fun-numbers/internal/random"
	"fun-numbers/internal/session"
)

// NumQuestions is the number of instructions per game.
const NumQuestions = 5

// RevealTurn is the counter value at which the result is revealed.
const RevealTurn = NumQuestions + 1

// Track selects which running total is live. The values are what the
// platform stores under the start_op field.
type Track string

const (
	TrackAdditive       Track = "add"
	TrackMultiplicative Track = "multiply"
)

// Identity values for the dormant track.
const (
	additiveIdentity       = 0.0
	multiplicativeIdentity = 1.0
)

// Context parameter names.
const (
	FieldCounter        = "counter"
	FieldAddResult      = "add_result"
	FieldMultiplyResult = "multiply_result"
	FieldStartOp        = "start_op"
)

// ErrInvalidState is returned when stored fields do not form a valid state.
var ErrInvalidState = errors.New("invalid game state")

// ParseTrack validates a stored track name.
func ParseTrack(s string) (Track, bool) {
	switch Track(s) {
	case TrackAdditive, TrackMultiplicative:
		return Track(s), true
	}
	return "", false
}

// State is the game progress threaded through the platform between turns.
// Only the total selected by StartTrack is live; the other stays at its
// identity value.
type State struct {
	Counter        int     `json:"counter"`
	AddResult      float64 `json:"add_result"`
	MultiplyResult float64 `json:"multiply_result"`
	StartTrack     Track   `json:"start_op"`
}

// NewState returns the state of a game that has not issued an instruction
// yet, with a uniformly chosen track.
func NewState(rnd random.Source) State {
	track := TrackMultiplicative
	if rnd.Intn(2) == 1 {
		track = TrackAdditive
	}
	return StartState(track)
}

// StartState returns the initial state for a given track.
func StartState(track Track) State {
	return State{
		Counter:        1,
		AddResult:      additiveIdentity,
		MultiplyResult: multiplicativeIdentity,
		StartTrack:     track,
	}
}

// Live returns the running total of the active track.
func (s State) Live() float64 {
	if s.StartTrack == TrackAdditive {
		return s.AddResult
	}
	return s.MultiplyResult
}

// withLive returns a copy with the active total replaced and the dormant
// total reset to its identity.
func (s State) withLive(total float64) State {
	s.AddResult, s.MultiplyResult = additiveIdentity, multiplicativeIdentity
	if s.StartTrack == TrackAdditive {
		s.AddResult = total
	} else {
		s.MultiplyResult = total
	}
	return s
}

// Fields encodes the state for the platform's string-typed context store.
func (s State) Fields() session.Fields {
	return session.Fields{
		FieldCounter:        session.FormatCounter(s.Counter),
		FieldAddResult:      session.FormatNumber(s.AddResult),
		FieldMultiplyResult: session.FormatNumber(s.MultiplyResult),
		FieldStartOp:        string(s.StartTrack),
	}
}

// DecodeState parses stored fields back into a State.
func DecodeState(f session.Fields) (State, error) {
	counter, err := f.Counter(FieldCounter)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if counter < 1 || counter > RevealTurn {
		return State{}, fmt.Errorf("%w: counter %d out of range", ErrInvalidState, counter)
	}

	add, err := f.Number(FieldAddResult)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	mul, err := f.Number(FieldMultiplyResult)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	track, ok := ParseTrack(f.String(FieldStartOp))
	if !ok {
		return State{}, fmt.Errorf("%w: unknown start_op %q", ErrInvalidState, f.String(FieldStartOp))
	}

	return State{
		Counter:        counter,
		AddResult:      add,
		MultiplyResult: mul,
		StartTrack:     track,
	}, nil
}
