package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/quaggy/edge/internal/modules/auth"
)

// RegisterRoutes registers all feature routes. The /backend surface is
// unauthenticated: it is only reachable by the upstream engine.
func (h *Handler) RegisterRoutes(r chi.Router, sessions *auth.SessionStore) {
	r.Post("/backend/digest", h.HandleDigest)
	r.Get("/backend/cache", h.HandleCacheDump)

	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireLogin)
		r.Get("/api/features", h.HandleGetFeatures)
		r.Get("/api/features/filter", h.HandleApplyFilter)
	})
}
