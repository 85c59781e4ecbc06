package domain

import (
	"github.com/google/uuid"
)

// Principal is a stored identity used for authentication.
// It is read-only to the authentication flow.
type Principal struct {
	ID             uuid.UUID
	Username       string
	CredentialHash string //nolint:gosec // one-way hash, never the plaintext
	Role           Role
	Enabled        bool
}

// CanAuthenticate reports whether the principal is allowed to log in at all.
func (p *Principal) CanAuthenticate() bool {
	return p != nil && p.Enabled && p.Role.IsValid()
}

// SecurityContext is the request-scoped identity derived from a validated token.
type SecurityContext struct {
	Subject string
	Role    Role
}
