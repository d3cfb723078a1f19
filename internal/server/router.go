package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fun-numbers/internal/calculator"
	"fun-numbers/internal/game"
	"fun-numbers/internal/handlers"
	"fun-numbers/internal/observability"
	"fun-numbers/internal/webhook"
)

// NewRouter mounts the fulfillment webhook, the JSON API of both engines,
// /health and /metrics.
func NewRouter(calc *calculator.Service, g *game.Service) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	webhook.RegisterRoutes(r, webhook.NewService(calc, g))
	calculator.RegisterRoutes(r, calc)
	game.RegisterRoutes(r, g)

	return r
}
