package domain

import (
	"github.com/allisson/storefront/internal/errors"
)

// Authentication and authorization errors.
//
// The three token errors and ErrInvalidCredentials all wrap errors.ErrUnauthorized, so the HTTP
// layer renders them identically. The specific cause is only visible in logs.
var (
	// ErrInvalidCredentials is returned for an unknown username, a wrong password or a disabled account.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrMissingToken indicates a protected operation was called without a bearer token.
	ErrMissingToken = errors.Wrap(errors.ErrUnauthorized, "missing bearer token")

	// ErrMalformedToken indicates the token could not be parsed.
	ErrMalformedToken = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrBadSignature indicates the token signature does not match its header and claims.
	ErrBadSignature = errors.Wrap(errors.ErrUnauthorized, "bad token signature")

	// ErrExpiredToken indicates a correctly signed token whose expiry has passed.
	ErrExpiredToken = errors.Wrap(errors.ErrUnauthorized, "expired token")

	// ErrInsufficientRole indicates a valid token whose role does not satisfy the operation policy.
	ErrInsufficientRole = errors.Wrap(errors.ErrForbidden, "insufficient role")

	// ErrPrincipalNotFound indicates no principal exists for the requested username.
	ErrPrincipalNotFound = errors.Wrap(errors.ErrNotFound, "principal not found")

	// ErrDirectoryUnavailable indicates the principal directory failed to answer a lookup.
	ErrDirectoryUnavailable = errors.Wrap(errors.ErrUnavailable, "principal directory unavailable")

	// ErrInvalidRole indicates a role value outside the recognized set.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")
)
