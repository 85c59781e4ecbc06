package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	authService "github.com/allisson/storefront/internal/auth/service"
)

// dummyPassword is hashed once and verified against when a username is unknown,
// so a failed lookup costs about the same as a wrong password.
const dummyPassword = "storefront-dummy-password"

// authUseCase implements AuthUseCase.
type authUseCase struct {
	directory PrincipalDirectory
	verifier  authService.CredentialVerifier
	codec     authService.TokenCodec
	now       func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase creates an AuthUseCase. The codec owns the signing key and token lifetime.
func NewAuthUseCase(
	directory PrincipalDirectory,
	verifier authService.CredentialVerifier,
	codec authService.TokenCodec,
) AuthUseCase {
	return &authUseCase{
		directory: directory,
		verifier:  verifier,
		codec:     codec,
		now:       time.Now,
	}
}

// Login authenticates a principal by username and password.
//
// The verifier always runs, against a dummy hash when the principal is missing, and the enabled
// flag is checked only after verification.
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.IssuedToken, error) {
	principal, err := a.directory.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, authDomain.ErrPrincipalNotFound) {
			a.verifier.Verify(input.Password, a.getDummyHash())
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.verifier.Verify(input.Password, principal.CredentialHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !principal.CanAuthenticate() {
		return nil, authDomain.ErrInvalidCredentials
	}

	return a.codec.Issue(principal.Username, principal.Role, a.now().UTC())
}

// Authenticate validates the token against the current time.
func (a *authUseCase) Authenticate(_ context.Context, token string) (*authDomain.SecurityContext, error) {
	return a.codec.Validate(token, a.now().UTC())
}

func (a *authUseCase) getDummyHash() string {
	a.dummyOnce.Do(func() {
		hash, err := a.verifier.Hash(dummyPassword)
		if err == nil {
			a.dummyHash = hash
		}
	})
	return a.dummyHash
}
