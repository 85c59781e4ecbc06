// Package usecase implements the authentication gate: credential login and bearer token authentication.
package usecase

import (
	"context"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	userDomain "github.com/allisson/storefront/internal/user/domain"
)

// UserRepository is the read side of the user store used to resolve principals.
type UserRepository interface {
	// GetByUsername returns userDomain.ErrUserNotFound when no user matches exactly.
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
}

// PrincipalDirectory resolves usernames to stored principals.
type PrincipalDirectory interface {
	// FindByUsername returns ErrPrincipalNotFound when the username is unknown and
	// ErrDirectoryUnavailable when the store cannot answer.
	FindByUsername(ctx context.Context, username string) (*authDomain.Principal, error)
}

// AuthUseCase defines the authentication operations exposed to the HTTP layer.
type AuthUseCase interface {
	// Login verifies the credentials and issues a bearer token.
	//
	// Unknown username, wrong password and disabled account all return ErrInvalidCredentials,
	// so callers cannot tell which one failed. Directory failures return ErrDirectoryUnavailable.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.IssuedToken, error)

	// Authenticate validates a bearer token at the current time and returns the caller identity.
	// Returns ErrMalformedToken, ErrBadSignature or ErrExpiredToken on failure.
	Authenticate(ctx context.Context, token string) (*authDomain.SecurityContext, error)
}
