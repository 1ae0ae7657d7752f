package users

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/quaggy/edge/internal/domain"
)

// Store is the in-memory user store. State lives for the process
// lifetime only; commits use overwrite semantics with last writer wins.
type Store struct {
	users map[string]*User
	mu    sync.RWMutex
	log   zerolog.Logger
}

// NewStore creates an empty user store.
func NewStore(log zerolog.Logger) *Store {
	return &Store{
		users: make(map[string]*User),
		log:   log.With().Str("store", "users").Logger(),
	}
}

// FindByName returns a copy of the named user, or (nil, false) when no
// such user exists.
func (s *Store) FindByName(name string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.users[name]
	if !ok {
		return nil, false
	}
	return copyUser(stored), true
}

// Commit upserts the full user record.
func (s *Store) Commit(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.Name] = copyUser(u)
	s.log.Debug().Str("user", u.Name).Int("filters", len(u.Filters)).Msg("User committed")
}

// AddFilters merges validated filters into the named user's filter map,
// overwriting any existing entry under a reused name, and commits.
func (s *Store) AddFilters(name string, filters map[string]domain.Filter) (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[name]
	if !ok {
		return nil, false
	}
	for filterName, filter := range filters {
		stored.Filters[filterName] = filter
	}
	s.log.Debug().Str("user", name).Int("added", len(filters)).Msg("Filters added")
	return copyUser(stored), true
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// copyUser clones a user so callers cannot mutate stored state.
func copyUser(u *User) *User {
	filters := make(map[string]domain.Filter, len(u.Filters))
	for name, filter := range u.Filters {
		filters[name] = filter
	}
	return &User{
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Filters:      filters,
	}
}
