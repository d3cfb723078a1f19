package game

import (
	"math"

	"fun-numbers/internal/random"
)

// ReplayStep is one instruction of a replayed game.
type ReplayStep struct {
	Turn        int         `json:"turn"`
	Instruction Instruction `json:"instruction"`
	// Player is the player's running value, when a secret was supplied.
	Player *float64 `json:"player,omitempty"`
}

// Replay is a complete game played in one call.
type Replay struct {
	Track  Track        `json:"track"`
	Steps  []ReplayStep `json:"steps"`
	Result float64      `json:"result"`
	Text   string       `json:"text"`
	// Verified reports whether the player's value matches the reveal; nil
	// without a secret.
	Verified *bool `json:"verified,omitempty"`
}

// RunReplay plays every turn of a game on track. With a secret, it also
// follows the player's arithmetic and checks it against the reveal.
func RunReplay(track Track, rnd random.Source, secret *float64) (Replay, error) {
	state := StartState(track)
	out := Replay{Track: track, Steps: make([]ReplayStep, 0, NumQuestions)}

	var player float64
	if secret != nil {
		player = *secret
	}

	for {
		turn, err := Play(state, rnd)
		if err != nil {
			return Replay{}, err
		}
		if turn.GameOver {
			out.Result = turn.Result
			out.Text = turn.Text
			break
		}

		step := ReplayStep{Turn: state.Counter, Instruction: *turn.Instruction}
		if secret != nil {
			player = ApplyToSecret(*turn.Instruction, player, *secret)
			v := player
			step.Player = &v
		}
		out.Steps = append(out.Steps, step)
		state = turn.State
	}

	if secret != nil {
		ok := closeEnough(player, out.Result)
		out.Verified = &ok
	}
	return out, nil
}

func closeEnough(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
