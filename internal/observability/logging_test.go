package observability

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelGatedFollowsEnabler(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	gated := levelGated{Core: core, enabler: zap.WarnLevel}

	logger := zap.New(gated).With(zap.String("component", "webhook"))
	logger.Info("dropped")
	logger.Warn("kept")

	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != "kept" {
		t.Fatalf("expected only the warn entry, got %+v", entries)
	}
	if entries[0].ContextMap()["component"] != "webhook" {
		t.Fatalf("expected fields added by With to survive, got %#v", entries[0].ContextMap())
	}
	if gated.Enabled(zapcore.InfoLevel) {
		t.Fatal("expected info to be disabled")
	}
}
