package game

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"fun-numbers/internal/random"
	"fun-numbers/internal/responses"
	"fun-numbers/internal/session"
	"fun-numbers/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing game metrics: %v", err)
	}
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(responses.Default(), random.NewSeeded(3)))
	return r
}

func TestBeginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.PostJSON(t, router, "/game/begin", struct{}{})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp OpeningResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Text == "" {
		t.Fatal("expected a greeting")
	}
	if resp.State[FieldCounter] != "1" {
		t.Fatalf("expected counter \"1\", got %#v", resp.State[FieldCounter])
	}
	if _, err := DecodeState(resp.State); err != nil {
		t.Fatalf("opening state does not decode: %v", err)
	}
}

func TestTurnEndpointAdvancesState(t *testing.T) {
	router := newTestRouter(t)

	w := testutil.PostJSON(t, router, "/game/turn", TurnRequest{State: StartState(TrackMultiplicative).Fields()})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TurnResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.State[FieldCounter] != "2" {
		t.Fatalf("expected counter \"2\", got %#v", resp.State[FieldCounter])
	}
	if resp.Instruction == nil || resp.Instruction.Step != StepMultiply {
		t.Fatalf("expected a multiply instruction, got %+v", resp.Instruction)
	}
	if resp.GameOver {
		t.Fatal("game should not be over after the first turn")
	}
}

func TestTurnEndpointRevealsResult(t *testing.T) {
	router := newTestRouter(t)

	state := State{Counter: RevealTurn, AddResult: 14, MultiplyResult: 1, StartTrack: TrackAdditive}
	w := testutil.PostJSON(t, router, "/game/turn", TurnRequest{State: state.Fields()})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TurnResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if !resp.GameOver || resp.Text != "Your result is 14. Do you want to play again?" {
		t.Fatalf("unexpected reveal %+v", resp)
	}
	if resp.State[FieldCounter] != "1" {
		t.Fatalf("expected reset counter, got %#v", resp.State[FieldCounter])
	}
}

func TestTurnEndpointRejectsInvalidState(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"malformed body", "not an object", http.StatusBadRequest},
		{"bad counter", TurnRequest{State: session.Fields{FieldCounter: "9"}}, http.StatusUnprocessableEntity},
		{"bad track", TurnRequest{State: session.Fields{
			FieldCounter: "2", FieldAddResult: "0", FieldMultiplyResult: "1", FieldStartOp: "square",
		}}, http.StatusUnprocessableEntity},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.PostJSON(t, router, "/game/turn", tc.body)
			testutil.CheckResponseCode(t, tc.status, w.Code)
		})
	}
}

func TestReplayEndpoint(t *testing.T) {
	router := newTestRouter(t)
	secret := 8.0

	w := testutil.PostJSON(t, router, "/game/replay", ReplayRequest{Track: TrackMultiplicative, Seed: 7, Secret: &secret})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp Replay
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if len(resp.Steps) != NumQuestions {
		t.Fatalf("expected %d steps, got %d", NumQuestions, len(resp.Steps))
	}
	if resp.Verified == nil || !*resp.Verified {
		t.Fatalf("expected verified replay, got %+v", resp)
	}

	w = testutil.PostJSON(t, router, "/game/replay", ReplayRequest{Track: "square", Seed: 7})
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}
