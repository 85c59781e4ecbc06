// Package http provides the login endpoint and the gin middleware that authenticates bearer
// tokens and enforces per-route access policies.
package http

import (
	"context"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
)

// securityContextKey is a context key type for storing the caller identity.
type securityContextKey struct{}

// WithSecurityContext stores the caller identity in the context.
// This is called by the authentication middleware after successful token validation.
func WithSecurityContext(ctx context.Context, sc *authDomain.SecurityContext) context.Context {
	return context.WithValue(ctx, securityContextKey{}, sc)
}

// GetSecurityContext retrieves the caller identity from the context.
// Returns (nil, false) for anonymous requests.
func GetSecurityContext(ctx context.Context) (*authDomain.SecurityContext, bool) {
	sc, ok := ctx.Value(securityContextKey{}).(*authDomain.SecurityContext)
	return sc, ok && sc != nil
}
