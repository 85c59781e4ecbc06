package dto

import (
	"time"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
)

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MapIssuedTokenToResponse converts an issued token to its API representation.
func MapIssuedTokenToResponse(token *authDomain.IssuedToken) LoginResponse {
	return LoginResponse{
		Token:     token.Token,
		Type:      token.Type,
		ExpiresAt: token.ExpiresAt,
	}
}

// MapSecurityContextToResponse converts the caller identity to its API representation.
func MapSecurityContextToResponse(sc *authDomain.SecurityContext) MeResponse {
	return MeResponse{
		Username: sc.Subject,
		Role:     sc.Role.String(),
	}
}
