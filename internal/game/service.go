package game

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"fun-numbers/internal/observability"
	"fun-numbers/internal/random"
	"fun-numbers/internal/responses"
	"fun-numbers/internal/session"
)

var tracer = otel.Tracer("game")

// Opening is the reply that starts (or ends) a game together with the
// state to store.
type Opening struct {
	Text  string
	State State
}

// Service runs the game dialogue.
type Service struct {
	replies responses.Table
	rnd     random.Source
}

// NewService builds a Service.
func NewService(replies responses.Table, rnd random.Source) *Service {
	return &Service{replies: replies, rnd: rnd}
}

// Begin starts a game.
func (s *Service) Begin() Opening {
	return Opening{Text: s.replies.Random(responses.GameGreeting, s.rnd), State: NewState(s.rnd)}
}

// PlayAgain starts another round after a reveal.
func (s *Service) PlayAgain() Opening {
	return Opening{Text: s.replies.Random(responses.GameRestart, s.rnd), State: NewState(s.rnd)}
}

// End says goodbye and returns reset state.
func (s *Service) End() Opening {
	return Opening{Text: s.replies.Random(responses.GameGoodbye, s.rnd), State: NewState(s.rnd)}
}

// Play advances a decoded state by one turn.
func (s *Service) Play(ctx context.Context, state State) (Turn, error) {
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "game.turn",
		trace.WithAttributes(
			attribute.String("game.track", string(state.StartTrack)),
			attribute.Int("game.counter", state.Counter),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	turn, err := Play(state, s.rnd)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid game state")
		errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "play")))
		return Turn{}, err
	}

	track := attribute.String("track", string(state.StartTrack))
	if turn.GameOver {
		completedCounter.Add(ctx, 1, metric.WithAttributes(track))
		span.AddEvent("game.reveal", trace.WithAttributes(attribute.Float64("result", turn.Result)))
		logger.Info("game revealed",
			zap.String("track", string(state.StartTrack)),
			zap.Float64("result", turn.Result),
			zap.String("request_id", requestID),
		)
	} else {
		step := string(turn.Instruction.Step)
		turnCounter.Add(ctx, 1, metric.WithAttributes(track, attribute.String("step", step)))
		span.SetAttributes(attribute.String("game.step", step))
		logger.Info("game instruction issued",
			zap.String("track", string(state.StartTrack)),
			zap.Int("counter", state.Counter),
			zap.String("step", step),
			zap.Float64("total", turn.Instruction.Total),
			zap.String("request_id", requestID),
		)
	}
	span.SetStatus(codes.Ok, "")

	return turn, nil
}

// PlayFields decodes stored fields and plays a turn. Unreadable state
// restarts the game with a "lost track" reply instead of failing the turn.
func (s *Service) PlayFields(ctx context.Context, fields session.Fields) Turn {
	state, err := DecodeState(fields)
	if err == nil {
		var turn Turn
		turn, err = s.Play(ctx, state)
		if err == nil {
			return turn
		}
	}

	errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "decode")))
	observability.LoggerWithTrace(ctx).Warn("restarting game from unreadable state",
		zap.Error(err),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	return Turn{
		Text:  s.replies.Random(responses.GameStateLost, s.rnd),
		State: NewState(s.rnd),
	}
}

// Replay plays a whole game on track with its own seeded source.
func (s *Service) Replay(ctx context.Context, track Track, seed uint64, secret *float64) (Replay, error) {
	ctx, span := tracer.Start(ctx, "game.replay",
		trace.WithAttributes(
			attribute.String("game.track", string(track)),
			attribute.Int64("game.seed", int64(seed)),
		),
	)
	defer span.End()

	out, err := RunReplay(track, random.NewSeeded(seed), secret)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Replay{}, err
	}

	for _, step := range out.Steps {
		_, stepSpan := tracer.Start(ctx, "game.replay.step."+string(step.Instruction.Step),
			trace.WithAttributes(
				attribute.Int("game.turn", step.Turn),
				attribute.Float64("game.operand", step.Instruction.Operand),
				attribute.Float64("game.total", step.Instruction.Total),
			),
		)
		stepSpan.End()
	}

	span.SetAttributes(attribute.Float64("game.result", out.Result))
	span.SetStatus(codes.Ok, "")
	return out, nil
}
