package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix.
func RegisterRoutes(r chi.Router, svc *Service) {
	h := NewHandler(svc)

	r.Route("/calculator", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Post("/operations/{op}", h.Operation)
	})
}
