package game

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the game endpoints under /game.
func RegisterRoutes(r chi.Router, svc *Service) {
	h := NewHandler(svc)

	r.Route("/game", func(r chi.Router) {
		r.Post("/begin", h.Begin)
		r.Post("/again", h.Again)
		r.Post("/end", h.End)
		r.Post("/turn", h.Turn)
		r.Post("/replay", h.Replay)
	})
}
