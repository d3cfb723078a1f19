package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLoggerRejectsUnknownLevel(t *testing.T) {
	oldLogger := Logger
	t.Cleanup(func() { Logger = oldLogger })

	if err := InitLogger("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if Logger != oldLogger {
		t.Fatal("expected logger to be left untouched on error")
	}
}

func TestInitLoggerAcceptsLevel(t *testing.T) {
	oldLogger := Logger
	t.Cleanup(func() { Logger = oldLogger })

	if err := InitLogger("warn"); err != nil {
		t.Fatalf("InitLogger: %v", err)
	}
	if Logger.Core().Enabled(zap.InfoLevel) {
		t.Fatal("expected info level to be disabled at warn")
	}
}

func TestLoggerWithTraceAddsSpanFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := Logger
	Logger = zap.New(core)
	t.Cleanup(func() { Logger = oldLogger })

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	LoggerWithTrace(ctx).Info("hello")

	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("expected trace_id %q, got %#v", traceID.String(), fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("expected span_id %q, got %#v", spanID.String(), fields["span_id"])
	}
}

func TestLoggerWithTraceWithoutSpanReturnsBaseLogger(t *testing.T) {
	if got := LoggerWithTrace(context.Background()); got != Logger {
		t.Fatal("expected base logger when no span is active")
	}
}
