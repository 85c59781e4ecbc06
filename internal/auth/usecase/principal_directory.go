package usecase

import (
	"context"
	"errors"
	"fmt"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	userDomain "github.com/allisson/storefront/internal/user/domain"
)

// principalDirectory adapts the user repository to PrincipalDirectory.
type principalDirectory struct {
	userRepo UserRepository
}

// NewPrincipalDirectory creates a PrincipalDirectory backed by the user store.
func NewPrincipalDirectory(userRepo UserRepository) PrincipalDirectory {
	return &principalDirectory{userRepo: userRepo}
}

// FindByUsername looks up a user and maps it to a Principal. Stored roles are normalized to their
// canonical form; an unrecognized stored role leaves Role empty so the principal cannot authenticate.
func (d *principalDirectory) FindByUsername(ctx context.Context, username string) (*authDomain.Principal, error) {
	user, err := d.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrPrincipalNotFound
		}
		return nil, fmt.Errorf("%w: %w", authDomain.ErrDirectoryUnavailable, err)
	}

	role, err := authDomain.ParseRole(user.Role)
	if err != nil {
		role = ""
	}

	return &authDomain.Principal{
		ID:             user.ID,
		Username:       user.Username,
		CredentialHash: user.Password,
		Role:           role,
		Enabled:        user.Enabled,
	}, nil
}
