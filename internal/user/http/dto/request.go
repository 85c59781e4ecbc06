// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/storefront/internal/validation"
)

// CreateUserRequest represents the API request for provisioning a user
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request payload
	Role     string `json:"role"`
}

// Validate checks request shape. Password strength is enforced by the use case.
func (r *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In("ADMIN", "USER", "ROLE_ADMIN", "ROLE_USER").Error("role must be ADMIN or USER"),
		),
	)
	return appValidation.WrapValidationError(err)
}
