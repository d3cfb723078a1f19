package game

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fun-numbers/internal/handlers"
	"fun-numbers/internal/observability"
)

// Handler serves the game's JSON endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a Handler around svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func writeOpening(w http.ResponseWriter, o Opening) {
	handlers.WriteJSON(w, http.StatusOK, OpeningResponse{Text: o.Text, State: o.State.Fields()})
}

// Begin handles POST /game/begin.
func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	writeOpening(w, h.svc.Begin())
}

// Again handles POST /game/again.
func (h *Handler) Again(w http.ResponseWriter, r *http.Request) {
	writeOpening(w, h.svc.PlayAgain())
}

// End handles POST /game/end.
func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	writeOpening(w, h.svc.End())
}

// Turn handles POST /game/turn. Unlike the webhook, a malformed state is
// reported to the caller.
func (h *Handler) Turn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "turn", Message: "invalid request body", Err: err,
		})
		return
	}

	state, err := DecodeState(req.State)
	if err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusUnprocessableEntity, Operation: "turn", Message: "invalid game state", Err: err,
		})
		return
	}

	turn, err := h.svc.Play(ctx, state)
	if err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusUnprocessableEntity, Operation: "turn", Message: "invalid game state", Err: err,
		})
		return
	}

	handlers.WriteJSON(w, http.StatusOK, TurnResponse{
		Text:        turn.Text,
		State:       turn.State.Fields(),
		Instruction: turn.Instruction,
		GameOver:    turn.GameOver,
	})
}

// Replay handles POST /game/replay.
func (h *Handler) Replay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ReplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "replay", Message: "invalid request body", Err: err,
		})
		return
	}

	if _, ok := ParseTrack(string(req.Track)); !ok {
		err := fmt.Errorf("%w: unknown track %q", ErrInvalidState, req.Track)
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "replay", Message: "unknown track", Err: err,
		})
		return
	}

	out, err := h.svc.Replay(ctx, req.Track, req.Seed, req.Secret)
	if err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusInternalServerError, Operation: "replay", Message: "replay failed", Err: err,
		})
		return
	}

	handlers.WriteJSON(w, http.StatusOK, out)
}
