package calculator

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"fun-numbers/internal/observability"
	"fun-numbers/internal/responses"
)

// firstSource always picks the first phrase of a pool.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func newTestService() *Service {
	return NewService(responses.Default(), firstSource{})
}

func TestServiceGreeting(t *testing.T) {
	if got := newTestService().Greeting(); got != "Okay, tell me what to calculate" {
		t.Fatalf("unexpected greeting %q", got)
	}
}

func TestServiceAnswerAppendsFollowUp(t *testing.T) {
	answer := newTestService().Answer(context.Background(), Request{Phrase: "what is 3 plus 4"})

	want := "The answer is 7. Do you want to perform another calculation?"
	if answer.Text != want {
		t.Fatalf("text = %q, want %q", answer.Text, want)
	}
	if answer.FollowUpCounter != "0" {
		t.Fatalf("follow-up counter = %q, want %q", answer.FollowUpCounter, "0")
	}
	if answer.Result.Value != 7 {
		t.Fatalf("value = %v, want 7", answer.Result.Value)
	}
}

func TestServiceCalculateLogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	ctx := observability.ContextWithRequestID(context.Background(), "req-9")
	newTestService().Calculate(ctx, Request{Phrase: "hello"})

	entries := logs.FilterMessage("calculation completed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["outcome"] != string(OutcomeUnparseable) {
		t.Fatalf("expected outcome %q, got %#v", OutcomeUnparseable, fields["outcome"])
	}
	if fields["request_id"] != "req-9" {
		t.Fatalf("expected request_id %q, got %#v", "req-9", fields["request_id"])
	}
}

func TestServiceCalculateAgain(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		counter    string
		wantAction NextAction
		wantText   string
	}{
		{counter: "0", wantAction: ActionRestartCalculation, wantText: "Okay, tell me what to calculate"},
		{counter: "", wantAction: ActionRestartCalculation, wantText: "Okay, tell me what to calculate"},
		{counter: "garbage", wantAction: ActionRestartCalculation, wantText: "Okay, tell me what to calculate"},
		{counter: "1", wantAction: ActionBeginGame},
	}

	for _, tc := range tests {
		got := svc.CalculateAgain(tc.counter)
		if got.Action != tc.wantAction || got.Text != tc.wantText {
			t.Errorf("CalculateAgain(%q) = %+v, want action %s text %q", tc.counter, got, tc.wantAction, tc.wantText)
		}
	}
}

func TestServiceEndSessionTwoStep(t *testing.T) {
	svc := newTestService()

	first := svc.EndSession("0")
	if first.Final {
		t.Fatal("expected first refusal to keep the conversation open")
	}
	if first.Text != "What about a game; want to try it?" {
		t.Fatalf("unexpected try-game text %q", first.Text)
	}
	if first.NextCounter != "1" {
		t.Fatalf("next counter = %q, want %q", first.NextCounter, "1")
	}

	second := svc.EndSession(first.NextCounter)
	if !second.Final {
		t.Fatal("expected second refusal to end the conversation")
	}
	if second.Text != "Okay! Have a nice time" {
		t.Fatalf("unexpected goodbye text %q", second.Text)
	}
}
