package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"catchup-service/internal/http/handlers"
)

// NewRouter builds the service router. CORS is open to the configured
// origins because the consumer is a browser single-page app.
func NewRouter(h *handlers.Handler, allowedOrigins []string) nethttp.Handler {
	r := chi.NewRouter()

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/games/{id}/catchup", h.GameCatchup)
	r.Get("/games/{id}", h.GameDetail)
	r.Get("/teams/social", h.TeamsSocial)
	r.Get("/teams/social/{abbrev}", h.TeamSocialByAbbreviation)
	r.Post("/spoiler/check", h.SpoilerCheck)

	return r
}
