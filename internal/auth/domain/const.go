// Package domain defines authentication and authorization domain models.
//
// Principals authenticate with a username and password and receive a signed, stateless access
// token. Every protected operation declares a Policy which is checked against the SecurityContext
// recovered from that token.
package domain

import "strings"

// Role is the single authorization role held by a principal.
type Role string

const (
	// RoleAdmin may create, update and delete catalog resources.
	RoleAdmin Role = "ADMIN"

	// RoleUser may read catalog resources.
	RoleUser Role = "USER"
)

// rolePrefix is the namespacing prefix some stores use for role values ("ROLE_ADMIN").
const rolePrefix = "ROLE_"

// TokenTypeBearer is the token type label returned with every issued token.
const TokenTypeBearer = "Bearer"

// IsValid reports whether r is one of the recognized roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// String returns the canonical role name.
func (r Role) String() string {
	return string(r)
}

// ParseRole normalizes a stored or claimed role value to its canonical form.
// "ROLE_ADMIN", "admin" and "ADMIN" all map to RoleAdmin. Unknown values return ErrInvalidRole.
func ParseRole(value string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.TrimPrefix(normalized, rolePrefix)

	role := Role(normalized)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
