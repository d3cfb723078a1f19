package webhook

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"fun-numbers/internal/calculator"
	"fun-numbers/internal/game"
	"fun-numbers/internal/observability"
	"fun-numbers/internal/session"
)

var tracer = otel.Tracer("webhook")

// Values of the operation parameter that open a flow.
const (
	OperationGame      = "game"
	OperationCalculate = "calculate"
)

// Actions configured on the platform's intents.
const (
	ActionPlayGame          = "play.game"
	ActionPlayAgainYes      = "play_game_again.yes"
	ActionPlayAgainNo       = "play_game_again.no"
	ActionCalculate         = "action.calculate"
	ActionCalculateAgainYes = "calculate.calculate.yes"
	ActionCalculateAgainNo  = "calculate.calculate.no"
)

// Route names for turns opened by the operation parameter.
const (
	routeBeginGame       = "begin_game"
	routeInitCalculation = "init_calculation"
)

// ErrUnknownAction is returned when neither the operation nor the action
// names a known route.
var ErrUnknownAction = errors.New("unknown action")

type route func(ctx context.Context, req Request) reply

// Service routes webhook turns to the calculator and game dialogues.
type Service struct {
	calc *calculator.Service
	game *game.Service
}

// NewService builds a Service.
func NewService(calc *calculator.Service, g *game.Service) *Service {
	return &Service{calc: calc, game: g}
}

// resolve picks the route for req. The operation parameter takes
// precedence over the action.
func (s *Service) resolve(req Request) (string, route, error) {
	switch req.Result.Parameters.String(paramOperation) {
	case OperationGame:
		return routeBeginGame, s.beginGame, nil
	case OperationCalculate:
		return routeInitCalculation, s.initCalculation, nil
	}

	switch req.Result.Action {
	case ActionPlayGame:
		return ActionPlayGame, s.playGame, nil
	case ActionPlayAgainYes:
		return ActionPlayAgainYes, s.playAgain, nil
	case ActionPlayAgainNo:
		return ActionPlayAgainNo, s.endGame, nil
	case ActionCalculate:
		return ActionCalculate, s.calculate, nil
	case ActionCalculateAgainYes:
		return ActionCalculateAgainYes, s.calculateAgain, nil
	case ActionCalculateAgainNo:
		return ActionCalculateAgainNo, s.endCalculation, nil
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Result.Action)
}

// Handle processes one turn.
func (s *Service) Handle(ctx context.Context, req Request) (Response, error) {
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "webhook.turn",
		trace.WithAttributes(
			attribute.String("webhook.action", req.Result.Action),
			attribute.String("webhook.session", req.SessionID),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	name, handle, err := s.resolve(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown action")
		return Response{}, err
	}

	rep := handle(ctx, req)
	actionsTotal.WithLabelValues(name).Inc()

	span.SetAttributes(attribute.String("webhook.route", name), attribute.Bool("webhook.final", rep.final))
	span.SetStatus(codes.Ok, "")

	observability.LoggerWithTrace(ctx).Info("webhook turn handled",
		zap.String("action", name),
		zap.String("session_id", req.SessionID),
		zap.Bool("final", rep.final),
		zap.String("request_id", requestID),
	)

	return render(req, rep), nil
}

func (s *Service) beginGame(ctx context.Context, req Request) reply {
	return s.gameOpening(s.game.Begin())
}

func (s *Service) gameOpening(o game.Opening) reply {
	return reply{
		text:     o.Text,
		contexts: []Context{outContext(ContextPlayGame, gameLifespan, o.State.Fields())},
	}
}

func (s *Service) playGame(ctx context.Context, req Request) reply {
	turn := s.game.PlayFields(ctx, req.Context(ContextPlayGame))
	if turn.GameOver {
		return reply{
			text: turn.Text,
			contexts: []Context{
				outContext(ContextPlayGame, endLifespan, turn.State.Fields()),
				outContext(ContextPlayAgain, gameLifespan, nil),
			},
			suggestions: yesNo,
		}
	}
	return reply{
		text:     turn.Text,
		contexts: []Context{outContext(ContextPlayGame, gameLifespan, turn.State.Fields())},
	}
}

func (s *Service) playAgain(ctx context.Context, req Request) reply {
	o := s.game.PlayAgain()
	return reply{
		text: o.Text,
		contexts: []Context{
			outContext(ContextPlayAgain, endLifespan, nil),
			outContext(ContextPlayGame, gameLifespan, o.State.Fields()),
		},
	}
}

func (s *Service) endGame(ctx context.Context, req Request) reply {
	o := s.game.End()
	return reply{
		text: o.Text,
		contexts: []Context{
			outContext(ContextPlayAgain, endLifespan, nil),
			outContext(ContextPlayGame, endLifespan, o.State.Fields()),
		},
		final: true,
	}
}

func (s *Service) initCalculation(ctx context.Context, req Request) reply {
	return reply{
		text:     s.calc.Greeting(),
		contexts: []Context{outContext(ContextCalculate, calculateLifespan, nil)},
	}
}

func (s *Service) calculate(ctx context.Context, req Request) reply {
	params := req.Result.Parameters
	answer := s.calc.Answer(ctx, calculator.Request{
		Phrase:     req.Result.ResolvedQuery,
		Operations: calculator.ParseOperations(calculations(params)),
		Operand1:   operand(params, paramNumber),
		Operand2:   operand(params, paramNumber1),
	})

	return reply{
		text: answer.Text,
		contexts: []Context{
			outContext(ContextCalculate, calculateLifespan, nil),
			outContext(ContextCalculateFollowUp, calculateLifespan, session.Fields{paramCounter: answer.FollowUpCounter}),
		},
		suggestions: yesNo,
	}
}

func (s *Service) calculateAgain(ctx context.Context, req Request) reply {
	again := s.calc.CalculateAgain(req.Context(ContextCalculateFollowUp).String(paramCounter))

	if again.Action == calculator.ActionBeginGame {
		rep := s.gameOpening(s.game.Begin())
		rep.contexts = append([]Context{
			outContext(ContextCalculate, endLifespan, nil),
			outContext(ContextCalculateFollowUp, endLifespan, nil),
		}, rep.contexts...)
		return rep
	}

	return reply{
		text: again.Text,
		contexts: []Context{
			outContext(ContextCalculate, calculateLifespan, nil),
			outContext(ContextCalculateFollowUp, endLifespan, nil),
		},
	}
}

func (s *Service) endCalculation(ctx context.Context, req Request) reply {
	farewell := s.calc.EndSession(req.Context(ContextCalculateFollowUp).String(paramCounter))

	if farewell.Final {
		return reply{
			text: farewell.Text,
			contexts: []Context{
				outContext(ContextCalculate, endLifespan, nil),
				outContext(ContextCalculateFollowUp, endLifespan, nil),
			},
			final: true,
		}
	}

	return reply{
		text: farewell.Text,
		contexts: []Context{
			outContext(ContextCalculate, calculateLifespan, nil),
			outContext(ContextCalculateFollowUp, calculateLifespan, session.Fields{paramCounter: farewell.NextCounter}),
		},
		suggestions: yesNo,
	}
}
