// Package handlers provides HTTP handlers for signup, login and logout.
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

// Handler handles credential HTTP requests
type Handler struct {
	userStore *users.Store
	sessions  *auth.SessionStore
	log       zerolog.Logger
}

// NewHandler creates a new credentials handler
func NewHandler(userStore *users.Store, sessions *auth.SessionStore, log zerolog.Logger) *Handler {
	return &Handler{
		userStore: userStore,
		sessions:  sessions,
		log:       log.With().Str("handler", "auth").Logger(),
	}
}

// credentials extracts and validates username/password from a payload.
func credentials(payload map[string]any) (string, string, error) {
	username, err := (validate.Username{}).Validate(payload["username"])
	if err != nil {
		return "", "", err
	}
	password, err := (validate.Password{}).Validate(payload["password"])
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

// openSession sets the session cookie for a fresh session.
func (h *Handler) openSession(w http.ResponseWriter, username string) {
	token := h.sessions.Create(username)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// HandleSignup handles POST /api/signup
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	payload := httpx.ParsePayload(r)

	username, password, err := credentials(payload)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	if _, exists := h.userStore.FindByName(username); exists {
		httpx.WriteError(w, r, apierr.UserAlreadyExists())
		return
	}

	user := users.New()
	user.Name = username
	if err := user.SetPassword(password); err != nil {
		h.log.Error().Err(err).Msg("Failed to hash password")
		httpx.WriteError(w, r, apierr.Internal())
		return
	}
	h.userStore.Commit(user)
	h.openSession(w, user.Name)

	h.log.Info().Str("user", username).Msg("User signed up")
	httpx.WriteValid(w, map[string]any{"user": user.Public()})
}

// HandleLogin handles POST /api/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	payload := httpx.ParsePayload(r)

	username, password, err := credentials(payload)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	user, ok := h.userStore.FindByName(username)
	if !ok || !user.VerifyPassword(password) {
		httpx.WriteError(w, r, apierr.InvalidCredentials())
		return
	}
	h.openSession(w, user.Name)

	h.log.Info().Str("user", username).Msg("User logged in")
	httpx.WriteValid(w, map[string]any{"user": user.Public()})
}

// HandleLogout handles POST /api/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	httpx.WriteValid(w, nil)
}

// HandleReset handles POST /api/reset. Password reset is declared but
// not built.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(w, r, apierr.NotImplemented())
}
