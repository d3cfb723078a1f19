package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"fun-numbers/internal/handlers"
	"fun-numbers/internal/observability"
)

var (
	// ErrUnknownOperation is returned for operation names outside Operations.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrEmptyRequest is returned when neither a phrase nor operations are given.
	ErrEmptyRequest = errors.New("phrase or operations required")
)

// Handler serves the calculator's JSON endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a Handler around svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Calculate handles POST /calculator/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "calculate", Message: "invalid request body", Err: err,
		})
		return
	}

	if strings.TrimSpace(req.Phrase) == "" && len(req.Operations) == 0 {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "calculate", Message: ErrEmptyRequest.Error(), Err: ErrEmptyRequest,
		})
		return
	}

	answer := h.svc.Answer(ctx, Request{
		Phrase:     req.Phrase,
		Operations: ParseOperations(req.Operations),
		Operand1:   req.Operand1,
		Operand2:   req.Operand2,
	})

	handlers.WriteJSON(w, http.StatusOK, CalculateResponse{
		Text:            answer.Text,
		Result:          answer.Result,
		FollowUpCounter: answer.FollowUpCounter,
	})
}

// Operation handles POST /calculator/operations/{op}: one named operation
// applied to explicit operands.
func (h *Handler) Operation(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "op")
	logger := observability.LoggerWithTrace(r.Context())
	requestID := observability.RequestIDFromContext(r.Context())

	ctx, span := tracer.Start(r.Context(), "calculator.operation",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	op, ok := ParseOperation(raw)
	if !ok {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusNotFound, Operation: "unknown", Message: "unknown operation", Err: fmt.Errorf("%w: %q", ErrUnknownOperation, raw),
		})
		return
	}
	span.SetAttributes(attribute.String("calculator.operation", string(op)))

	var req OperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: string(op), Message: "invalid request body", Err: err,
		})
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.operand.a", req.A),
		attribute.Float64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result := Apply(op, req.A, req.B, req.Phrase)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(
		attribute.String("path", string(PathSingle)),
		attribute.String("outcome", string(result.Outcome)),
	)
	calcCounter.Add(ctx, 1, attrs)
	calcHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result.Display),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", string(op)),
		zap.Float64("a", req.A),
		zap.Float64("b", req.B),
		zap.String("outcome", string(result.Outcome)),
		zap.String("result", result.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, OperationResponse{
		Operation: op,
		A:         req.A,
		B:         req.B,
		Result:    result,
		Text:      result.Text(req.Phrase),
	})
}
