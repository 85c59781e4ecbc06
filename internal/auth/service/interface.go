// Package service provides the stateless building blocks of authentication: credential
// verification, token encoding and validation, and signing key loading.
package service

import (
	"context"
	"time"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
)

// CredentialVerifier checks plaintext passwords against stored one-way hashes.
type CredentialVerifier interface {
	// Verify reports whether plain matches hash. Any internal failure, including an unknown
	// hash format, yields false. Inputs are never logged.
	Verify(plain, hash string) bool

	// Hash produces an Argon2id PHC string for plain. Used when provisioning users.
	Hash(plain string) (string, error)
}

// TokenCodec issues and validates signed bearer tokens. Implementations are safe for
// concurrent use; the signing key is fixed at construction.
type TokenCodec interface {
	// Issue creates a token for subject and role, valid from now until now plus the configured lifetime.
	Issue(subject string, role authDomain.Role, now time.Time) (*authDomain.IssuedToken, error)

	// Validate checks the token signature and expiry at now and returns the identity it carries.
	// Returns ErrMalformedToken, ErrBadSignature or ErrExpiredToken on failure.
	Validate(token string, now time.Time) (*authDomain.SecurityContext, error)
}

// KMSKeeper is the subset of *secrets.Keeper used to unwrap and wrap signing keys.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for a KMS key URI.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI (gcpkms://, awskms://, azurekeyvault://,
	// hashivault://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
