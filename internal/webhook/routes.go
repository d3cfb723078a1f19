package webhook

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the fulfillment endpoint.
func RegisterRoutes(r chi.Router, svc *Service) {
	h := NewHandler(svc)
	r.Post("/fun-numbers", h.Fulfill)
}
