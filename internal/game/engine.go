package game

import (
	"fmt"

	"fun-numbers/internal/random"
	"fun-numbers/internal/session"
)

// Step is one kind of instruction.
type Step string

const (
	StepAdd            Step = "add"
	StepSubtract       Step = "subtract"
	StepMultiply       Step = "multiply"
	StepDivide         Step = "divide"
	StepSubtractSecret Step = "subtract_secret"
	StepDivideSecret   Step = "divide_secret"
)

// Draw bounds, exclusive.
const (
	maxAddend     = 100
	maxMultiplier = 20
	maxDivisor    = 10
)

// maxDivisorDraws bounds divisor resampling so a degenerate Source cannot
// stall a turn.
const maxDivisorDraws = 64

// schedules lists the steps per track. The third step removes the secret
// number, so every later total depends only on the drawn numbers.
var schedules = map[Track][NumQuestions]Step{
	TrackAdditive:       {StepAdd, StepSubtract, StepSubtractSecret, StepMultiply, StepDivide},
	TrackMultiplicative: {StepMultiply, StepDivide, StepDivideSecret, StepSubtract, StepAdd},
}

// Instruction is one generated turn.
type Instruction struct {
	Step    Step    `json:"step"`
	Operand float64 `json:"operand,omitempty"`
	// Total is the new live total after the step.
	Total float64 `json:"total"`
	Text  string  `json:"text"`
}

// Turn is the outcome of one playGame call.
type Turn struct {
	Text  string `json:"text"`
	State State  `json:"state"`
	// Instruction is nil on the reveal turn.
	Instruction *Instruction `json:"instruction,omitempty"`
	// GameOver is true only on the reveal turn.
	GameOver bool `json:"game_over"`
	// Result is the revealed total; only meaningful when GameOver.
	Result float64 `json:"result,omitempty"`
}

// ScheduledStep returns the step issued at counter (1..NumQuestions).
func ScheduledStep(track Track, counter int) (Step, error) {
	steps, ok := schedules[track]
	if !ok {
		return "", fmt.Errorf("%w: unknown track %q", ErrInvalidState, track)
	}
	if counter < 1 || counter > NumQuestions {
		return "", fmt.Errorf("%w: no step at counter %d", ErrInvalidState, counter)
	}
	return steps[counter-1], nil
}

// Play advances s by one turn. Turns 1..NumQuestions return the next
// instruction; the reveal turn returns the result and a fresh state.
func Play(s State, rnd random.Source) (Turn, error) {
	if s.Counter == RevealTurn {
		result := s.Live()
		return Turn{
			Text:     fmt.Sprintf("Your result is %s. Do you want to play again?", session.FormatNumber(result)),
			State:    NewState(rnd),
			GameOver: true,
			Result:   result,
		}, nil
	}

	step, err := ScheduledStep(s.StartTrack, s.Counter)
	if err != nil {
		return Turn{}, err
	}

	instr := issue(step, s.Counter, s.Live(), rnd)
	next := s.withLive(instr.Total)
	next.Counter++

	return Turn{Text: instr.Text, State: next, Instruction: &instr}, nil
}

func issue(step Step, counter int, total float64, rnd random.Source) Instruction {
	subject := "result"
	if counter == 1 {
		subject = "secret number"
	}

	switch step {
	case StepAdd:
		n := float64(rnd.Intn(maxAddend))
		return Instruction{Step: step, Operand: n, Total: total + n,
			Text: fmt.Sprintf("Add %s to your %s", session.FormatNumber(n), subject)}
	case StepSubtract:
		n := float64(rnd.Intn(maxAddend))
		return Instruction{Step: step, Operand: n, Total: total - n,
			Text: fmt.Sprintf("Subtract %s from your result", session.FormatNumber(n))}
	case StepMultiply:
		n := float64(rnd.Intn(maxMultiplier))
		return Instruction{Step: step, Operand: n, Total: total * n,
			Text: fmt.Sprintf("Multiply your %s by %s", subject, session.FormatNumber(n))}
	case StepDivide:
		n := float64(Divisor(rnd))
		return Instruction{Step: step, Operand: n, Total: total / n,
			Text: fmt.Sprintf("Divide your result by %s", session.FormatNumber(n))}
	case StepSubtractSecret:
		return Instruction{Step: step, Total: total, Text: "Subtract your secret number from the result"}
	default: // StepDivideSecret
		return Instruction{Step: step, Total: total, Text: "Divide the result by your secret number"}
	}
}

// Divisor draws an even divisor in [0, 10), resampling odd draws, and maps
// 0 to 2. The result is always one of 2, 4, 6, 8.
func Divisor(rnd random.Source) int {
	n := rnd.Intn(maxDivisor)
	for i := 1; n%2 != 0 && i < maxDivisorDraws; i++ {
		n = rnd.Intn(maxDivisor)
	}
	if n%2 != 0 || n == 0 {
		n = 2
	}
	return n
}

// ApplyToSecret replays an instruction on the player's side, where the
// secret number is known.
func ApplyToSecret(instr Instruction, value, secret float64) float64 {
	switch instr.Step {
	case StepAdd:
		return value + instr.Operand
	case StepSubtract:
		return value - instr.Operand
	case StepMultiply:
		return value * instr.Operand
	case StepDivide:
		return value / instr.Operand
	case StepSubtractSecret:
		return value - secret
	case StepDivideSecret:
		return value / secret
	}
	return value
}
