package observability

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a random UUID string.
func NewRequestID() string {
	return uuid.New().String()
}

// InboundRequestID returns the caller's request ID when it is a UUID, so a
// redelivered turn keeps its ID, and a fresh one otherwise.
func InboundRequestID(r *http.Request) string {
	id := r.Header.Get(RequestIDHeader)
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return NewRequestID()
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestIDFromContext returns "" when no request ID is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
