package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/quaggy/edge/internal/modules/auth"
)

// RegisterRoutes registers all credential routes
func (h *Handler) RegisterRoutes(r chi.Router, sessions *auth.SessionStore) {
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireLogout)
		r.Post("/api/signup", h.HandleSignup)
		r.Post("/api/login", h.HandleLogin)
		r.Post("/api/reset", h.HandleReset)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireLogin)
		r.Post("/api/logout", h.HandleLogout)
	})
}
