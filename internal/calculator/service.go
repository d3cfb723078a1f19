package calculator

import (
	"context"
	"time"

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

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Follow-up counter values for the "calculate again?" dialogue.
const (
	FollowUpFirst  = 0
	FollowUpSecond = 1
)

// NextAction tells the adapter where a "yes, again" answer leads.
type NextAction string

const (
	ActionRestartCalculation NextAction = "restart_calculation"
	ActionBeginGame          NextAction = "begin_game"
)

// Answer is the reply to a calculation turn.
type Answer struct {
	Result Result
	// Text is the result sentence followed by a follow-up question.
	Text string
	// FollowUpCounter is the fresh follow-up counter to store.
	FollowUpCounter string
}

// Again is the decision for a "calculate again: yes" turn.
type Again struct {
	Action NextAction
	// Text is the greeting when Action is ActionRestartCalculation.
	Text string
}

// Farewell is the reply to a "calculate again: no" turn.
type Farewell struct {
	Text        string
	NextCounter string
	// Final is true when the conversation ends with this turn.
	Final bool
}

// Service holds the reply pools and randomness for the calculation dialogue.
type Service struct {
	replies responses.Table
	rnd     random.Source
}

// NewService builds a Service.
func NewService(replies responses.Table, rnd random.Source) *Service {
	return &Service{replies: replies, rnd: rnd}
}

// Greeting answers the start of a calculation session.
func (s *Service) Greeting() string {
	return s.replies.Random(responses.CalculationGreeting, s.rnd)
}

// Calculate runs one calculation and records its span, metrics and log line.
func (s *Service) Calculate(ctx context.Context, req Request) Result {
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(
			attribute.Int("calculator.operations", len(req.Operations)),
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	defer span.End()

	start := time.Now()
	result := Calculate(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(
		attribute.String("path", string(result.Path)),
		attribute.String("outcome", string(result.Outcome)),
	)
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(
		attribute.String("calculator.path", string(result.Path)),
		attribute.String("calculator.outcome", string(result.Outcome)),
	)
	if result.OK() {
		span.SetStatus(codes.Ok, "")
	}

	logger.Info("calculation completed",
		zap.String("path", string(result.Path)),
		zap.String("outcome", string(result.Outcome)),
		zap.String("display", result.Display),
		zap.Int("operations", len(req.Operations)),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	return result
}

// Answer calculates and appends a follow-up question, starting a fresh
// follow-up counter.
func (s *Service) Answer(ctx context.Context, req Request) Answer {
	result := s.Calculate(ctx, req)
	followUp := s.replies.Random(responses.CalculationFollowUp, s.rnd)

	return Answer{
		Result:          result,
		Text:            result.Text(req.Phrase) + ". " + followUp,
		FollowUpCounter: session.FormatCounter(FollowUpFirst),
	}
}

// CalculateAgain handles a "yes" to the follow-up question. On the first
// prompt it restarts the calculation; after the try-game offer it hands off
// to the game.
func (s *Service) CalculateAgain(counter string) Again {
	if followUpStage(counter) == FollowUpFirst {
		return Again{Action: ActionRestartCalculation, Text: s.Greeting()}
	}
	return Again{Action: ActionBeginGame}
}

// EndSession handles a "no" to the follow-up question: first offer the game,
// then say goodbye.
func (s *Service) EndSession(counter string) Farewell {
	if followUpStage(counter) == FollowUpFirst {
		return Farewell{
			Text:        s.replies.Random(responses.TryGame, s.rnd),
			NextCounter: session.FormatCounter(FollowUpSecond),
		}
	}
	return Farewell{
		Text:        s.replies.Random(responses.CalculationGoodbye, s.rnd),
		NextCounter: session.FormatCounter(FollowUpSecond),
		Final:       true,
	}
}

// followUpStage parses a stored counter. Unreadable counters restart the
// follow-up dialogue.
func followUpStage(counter string) int {
	n, err := session.ParseCounter(counter)
	if err != nil || n <= FollowUpFirst {
		return FollowUpFirst
	}
	return FollowUpSecond
}
