// Package auth provides cookie-session authentication for the API.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CookieName is the session cookie set on login/signup.
const CookieName = "quaggy_session"

// session is one active login.
type session struct {
	username  string
	expiresAt time.Time
}

// SessionStore holds active sessions in memory, keyed by an opaque uuid
// token. Sessions expire after a fixed TTL; expired entries are swept
// by a background job and also rejected lazily on resolve.
type SessionStore struct {
	sessions map[string]session
	ttl      time.Duration
	mu       sync.RWMutex
	log      zerolog.Logger

	now func() time.Time // test hook
}

// NewSessionStore creates a session store with the given TTL.
func NewSessionStore(ttl time.Duration, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session),
		ttl:      ttl,
		log:      log.With().Str("store", "sessions").Logger(),
		now:      time.Now,
	}
}

// Create opens a session for the user and returns its token.
func (s *SessionStore) Create(username string) string {
	token := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = session{
		username:  username,
		expiresAt: s.now().Add(s.ttl),
	}
	s.log.Debug().Str("user", username).Msg("Session created")
	return token
}

// Resolve returns the username behind a token, or false when the token
// is unknown or expired.
func (s *SessionStore) Resolve(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok || s.now().After(sess.expiresAt) {
		return "", false
	}
	return sess.username, true
}

// Destroy removes a session. Destroying an unknown token is a no-op.
func (s *SessionStore) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Cleanup removes expired sessions and returns how many were swept.
func (s *SessionStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	swept := 0
	for token, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, token)
			swept++
		}
	}
	if swept > 0 {
		s.log.Info().Int("swept", swept).Msg("Expired sessions removed")
	}
	return swept
}

// Len returns the number of sessions currently held, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
