package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/storefront/internal/errors"
)

// bcryptPrefixes identifies hashes produced by bcrypt implementations.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// credentialVerifier implements CredentialVerifier. New hashes are Argon2id; bcrypt hashes
// from older user stores are still accepted.
type credentialVerifier struct {
	hasher *pwdhash.PasswordHasher
}

// NewCredentialVerifier creates a CredentialVerifier using the Argon2id Moderate policy.
func NewCredentialVerifier() CredentialVerifier {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &credentialVerifier{
		hasher: hasher,
	}
}

// Verify compares plain against hash in constant time.
func (v *credentialVerifier) Verify(plain, hash string) bool {
	if plain == "" || hash == "" {
		return false
	}

	if isBcryptHash(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
	}

	ok, err := v.hasher.Verify([]byte(plain), hash)
	if err != nil {
		return false
	}
	return ok
}

// Hash hashes plain with Argon2id.
func (v *credentialVerifier) Hash(plain string) (string, error) {
	hash, err := v.hasher.Hash([]byte(plain))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

func isBcryptHash(hash string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}
