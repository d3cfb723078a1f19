package webhook

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"fun-numbers/internal/session"
)

// Context names shared with the platform's intent configuration.
const (
	ContextCalculate         = "calculate"
	ContextCalculateFollowUp = "calculate_followup"
	ContextPlayGame          = "play_game"
	ContextPlayAgain         = "play_game_again_followup"
)

// Lifespans, in turns.
const (
	calculateLifespan = 4
	gameLifespan      = 5
	endLifespan       = 0
)

// Parameter names.
const (
	paramOperation    = "operation"
	paramCalculations = "calculations"
	paramNumber       = "number"
	paramNumber1      = "number1"
	paramCounter      = "counter"
)

// ScreenOutput is the surface capability that enables suggestion chips.
const ScreenOutput = "actions.capability.SCREEN_OUTPUT"

// Context returns the parameters of the named input context, or nil when
// it is not active. The platform lowercases context names.
func (r Request) Context(name string) session.Fields {
	for _, c := range r.Result.Contexts {
		if strings.EqualFold(c.Name, name) {
			return c.Parameters
		}
	}
	return nil
}

// HasScreen reports whether the requesting surface can display text.
func (r Request) HasScreen() bool {
	if r.OriginalRequest == nil {
		return false
	}
	for _, c := range r.OriginalRequest.Data.Surface.Capabilities {
		if c.Name == ScreenOutput {
			return true
		}
	}
	return false
}

func outContext(name string, lifespan int, params session.Fields) Context {
	if params == nil {
		params = session.Fields{}
	}
	return Context{Name: name, Lifespan: lifespan, Parameters: params}
}

// operand reads a numeric entity. An absent entity is 0; one that does not
// parse is NaN so the calculation falls through to the unparseable reply.
func operand(params session.Fields, key string) float64 {
	if !params.Has(key) {
		return 0
	}
	n, err := params.Number(key)
	if err != nil {
		return math.NaN()
	}
	return n
}

// calculations reads the recognised operation entities. The platform sends
// a list, or a bare string when only one was matched.
func calculations(params session.Fields) []string {
	v, ok := params[paramCalculations]
	if !ok || v == nil {
		return nil
	}
	if s, isString := v.(string); isString {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return []string{s}
	}
	ops, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil
	}
	return ops
}
