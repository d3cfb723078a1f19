package observability

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HTTPError describes a rejected request.
type HTTPError struct {
	Status int
	// Operation labels the error counter and the log line.
	Operation string
	// Message is returned to the caller; Err stays in logs and traces.
	Message string
	Err     error
}

// RecordError handles a rejected request for every domain: marks the span
// active in ctx as failed, increments counter, logs with trace context and
// writes {"error": Message}. Client errors log at warn level. The request ID
// travels in the X-Request-ID header, not the body.
func RecordError(ctx context.Context, w http.ResponseWriter, counter metric.Int64Counter, e HTTPError) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(e.Err)
	span.SetStatus(codes.Error, e.Message)
	span.SetAttributes(attribute.Int("http.response.status_code", e.Status))

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", e.Operation),
		attribute.Int("status", e.Status),
	))

	log := LoggerWithTrace(ctx).Error
	if e.Status < http.StatusInternalServerError {
		log = LoggerWithTrace(ctx).Warn
	}
	log(e.Message,
		zap.String("operation", e.Operation),
		zap.Error(e.Err),
		zap.Int("status", e.Status),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": e.Message,
	})
}
