package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/storefront/internal/errors"
)

func TestPolicy_Authorize(t *testing.T) {
	admin := &SecurityContext{Subject: "admin", Role: RoleAdmin}
	user := &SecurityContext{Subject: "user", Role: RoleUser}

	tests := []struct {
		name        string
		policy      Policy
		sc          *SecurityContext
		expectedErr error
	}{
		{name: "anonymous without token", policy: PolicyAnonymous, sc: nil},
		{name: "anonymous with token", policy: PolicyAnonymous, sc: user},
		{name: "authenticated without token", policy: PolicyAuthenticated, sc: nil, expectedErr: ErrMissingToken},
		{name: "authenticated as user", policy: PolicyAuthenticated, sc: user},
		{name: "authenticated as admin", policy: PolicyAuthenticated, sc: admin},
		{name: "admin role as admin", policy: RequireRole(RoleAdmin), sc: admin},
		{name: "admin role as user", policy: RequireRole(RoleAdmin), sc: user, expectedErr: ErrInsufficientRole},
		{name: "admin role without token", policy: RequireRole(RoleAdmin), sc: nil, expectedErr: ErrMissingToken},
		{name: "user role as user", policy: RequireRole(RoleUser), sc: user},
		{name: "user role as admin has no hierarchy", policy: RequireRole(RoleUser), sc: admin, expectedErr: ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Authorize(tt.sc)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestPolicy_ErrorClasses(t *testing.T) {
	assert.ErrorIs(t, RequireRole(RoleAdmin).Authorize(nil), apperrors.ErrUnauthorized)
	assert.ErrorIs(t, RequireRole(RoleAdmin).Authorize(&SecurityContext{Subject: "u", Role: RoleUser}), apperrors.ErrForbidden)
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "anonymous", PolicyAnonymous.String())
	assert.Equal(t, "authenticated", PolicyAuthenticated.String())
	assert.Equal(t, "role:ADMIN", RequireRole(RoleAdmin).String())
}
