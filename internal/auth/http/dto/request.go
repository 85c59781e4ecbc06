// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	customValidation "github.com/allisson/storefront/internal/validation"
)

// LoginRequest contains the credentials for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"` //nolint:gosec // request payload
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 1024),
		),
	)
}

// ToLoginInput converts the request to the use case input.
func (r *LoginRequest) ToLoginInput() *authDomain.LoginInput {
	return &authDomain.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}
