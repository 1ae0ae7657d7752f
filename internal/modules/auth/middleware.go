package auth

import (
	"context"
	"net/http"

	"github.com/quaggy/edge/internal/apierr"
	"github.com/quaggy/edge/internal/httpx"
)

type contextKey string

const usernameKey contextKey = "username"

// UsernameFrom extracts the authenticated username from a request
// context. It is only set by RequireLogin.
func UsernameFrom(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// RequireLogin rejects requests without a valid session and injects the
// session's username into the request context.
func (s *SessionStore) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := s.resolveRequest(r)
		if !ok {
			httpx.WriteError(w, r, apierr.NeedCredentials())
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), usernameKey, username)))
	})
}

// RequireLogout rejects requests that carry a valid session.
func (s *SessionStore) RequireLogout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.resolveRequest(r); ok {
			httpx.WriteError(w, r, apierr.HaveCredentials())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolveRequest reads the session cookie and resolves it to a username.
func (s *SessionStore) resolveRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return s.Resolve(cookie.Value)
}
