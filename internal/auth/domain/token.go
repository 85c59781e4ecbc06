package domain

import "time"

// LoginInput carries the credentials presented to the login operation.
type LoginInput struct {
	Username string
	Password string //nolint:gosec // plaintext credential, never logged or stored
}

// IssuedToken is the result of a successful login.
type IssuedToken struct {
	Token     string
	Type      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
