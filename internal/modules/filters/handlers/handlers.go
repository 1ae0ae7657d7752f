// Package handlers provides HTTP handlers for user filter management.
package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/httpx"
	"github.com/quaggy/edge/internal/modules/auth"
	"github.com/quaggy/edge/internal/modules/users"
	"github.com/quaggy/edge/internal/validate"
)

// Handler handles filter management HTTP requests
type Handler struct {
	userStore *users.Store
	log       zerolog.Logger
}

// NewHandler creates a new filters handler
func NewHandler(userStore *users.Store, log zerolog.Logger) *Handler {
	return &Handler{
		userStore: userStore,
		log:       log.With().Str("handler", "filters").Logger(),
	}
}

// HandleGetFilters handles GET /api/filters
// Returns the authenticated user's current filter map.
func (h *Handler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UsernameFrom(r.Context())
	user, ok := h.userStore.FindByName(username)
	if !ok {
		// Session for a user that no longer exists.
		httpx.WriteError(w, r, apierr.NeedCredentials())
		return
	}
	httpx.WriteValid(w, map[string]any{"filters": user.Filters})
}

// HandleAddFilters handles POST /api/filters
// Validates the submitted filter map and merges it into the user's
// stored filters, overwriting reused names.
func (h *Handler) HandleAddFilters(w http.ResponseWriter, r *http.Request) {
	username, _ := auth.UsernameFrom(r.Context())
	payload := httpx.ParsePayload(r)

	validated, err := (validate.Filters{}).Validate(payload)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	user, ok := h.userStore.AddFilters(username, validated)
	if !ok {
		httpx.WriteError(w, r, apierr.NeedCredentials())
		return
	}

	h.log.Info().Str("user", username).Int("filters", len(validated)).Msg("Filters added")
	httpx.WriteValid(w, map[string]any{"filters": user.Filters})
}
