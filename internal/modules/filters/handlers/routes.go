package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/quaggy/edge/internal/modules/auth"
)

// RegisterRoutes registers all filter management routes
func (h *Handler) RegisterRoutes(r chi.Router, sessions *auth.SessionStore) {
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireLogin)
		r.Get("/api/filters", h.HandleGetFilters)
		r.Post("/api/filters", h.HandleAddFilters)
	})
}
