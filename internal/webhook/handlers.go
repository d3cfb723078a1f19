package webhook

import (
	"encoding/json"
	"errors"
	"net/http"

	"fun-numbers/internal/handlers"
	"fun-numbers/internal/observability"
)

// Handler serves the platform's fulfillment endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds a Handler around svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Fulfill handles POST /fun-numbers.
func (h *Handler) Fulfill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "fulfill", Message: "invalid request body", Err: err,
		})
		return
	}

	resp, err := h.svc.Handle(ctx, req)
	if errors.Is(err, ErrUnknownAction) {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusBadRequest, Operation: "fulfill", Message: "unknown action", Err: err,
		})
		return
	}
	if err != nil {
		observability.RecordError(ctx, w, errorCounter, observability.HTTPError{
			Status: http.StatusInternalServerError, Operation: "fulfill", Message: "fulfillment failed", Err: err,
		})
		return
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}
