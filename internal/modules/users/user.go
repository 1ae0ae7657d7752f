// Package users provides the user model and the in-memory user store.
package users

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/quaggy/edge/internal/domain"
)

// User is an account with its named filters. PasswordHash is a one-way
// bcrypt hash; verification happens only by re-hash-and-compare.
type User struct {
	Name         string
	PasswordHash string
	Filters      map[string]domain.Filter
}

// New creates an empty user. The caller sets the name and password and
// then commits the user to the store.
func New() *User {
	return &User{
		Filters: make(map[string]domain.Filter),
	}
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func (u *User) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// PublicUser is the client-facing view of a user; the password hash is
// withheld.
type PublicUser struct {
	Name    string                   `json:"name"`
	Filters map[string]domain.Filter `json:"filters"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		Name:    u.Name,
		Filters: u.Filters,
	}
}
