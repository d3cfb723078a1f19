package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestInboundRequestID(t *testing.T) {
	known := "6f1c1f52-8a55-4d8e-9a43-0c1f7f5f2b11"

	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{"missing", "", false},
		{"valid uuid", known, true},
		{"uppercase uuid", "6F1C1F52-8A55-4D8E-9A43-0C1F7F5F2B11", true},
		{"garbage", "turn-42", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/fun-numbers", nil)
			if tc.header != "" {
				r.Header.Set(RequestIDHeader, tc.header)
			}

			got := InboundRequestID(r)
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected a UUID, got %q: %v", got, err)
			}
			if tc.reuse && got != known {
				t.Fatalf("expected inbound ID %q to be reused, got %q", known, got)
			}
			if !tc.reuse && got == tc.header {
				t.Fatalf("expected %q to be replaced", tc.header)
			}
		})
	}
}

func TestRequestIDFromContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"set", ContextWithRequestID(context.Background(), "abc-123"), "abc-123"},
		{"missing", context.Background(), ""},
		{"wrong type", context.WithValue(context.Background(), RequestIDKey, 42), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RequestIDFromContext(tc.ctx); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
