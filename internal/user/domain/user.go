// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/storefront/internal/errors"
)

// User represents a stored account. Password holds the one-way hash, never the plaintext.
// Role is kept as stored; some stores prefix it ("ROLE_ADMIN"), and readers normalize it.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string //nolint:gosec // password hash
	Role      string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same username or email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidRole indicates the role is not ADMIN or USER.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
