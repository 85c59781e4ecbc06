package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	apperrors "github.com/allisson/storefront/internal/errors"
)

// MinSigningKeyLength is the minimum HMAC-SHA256 key size in bytes.
const MinSigningKeyLength = 32

// ErrSigningKeyTooShort is returned when the codec is constructed with a weak key.
var ErrSigningKeyTooShort = apperrors.New("signing key must be at least 32 bytes")

// Claims is the token payload.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// tokenCodec implements TokenCodec with compact JWS tokens signed with HMAC-SHA256.
type tokenCodec struct {
	key      []byte
	issuer   string
	lifetime time.Duration
	method   *jwt.SigningMethodHMAC
	parser   *jwt.Parser
}

// NewTokenCodec creates a TokenCodec. The key is copied and never changes afterwards.
func NewTokenCodec(key []byte, issuer string, lifetime time.Duration) (TokenCodec, error) {
	if len(key) < MinSigningKeyLength {
		return nil, ErrSigningKeyTooShort
	}
	if lifetime <= 0 {
		return nil, apperrors.New("token lifetime must be positive")
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &tokenCodec{
		key:      keyCopy,
		issuer:   issuer,
		lifetime: lifetime,
		method:   jwt.SigningMethodHS256,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithStrictDecoding(),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// Issue signs a new token. ExpiresAt is truncated to whole seconds, matching the encoded exp claim.
func (c *tokenCodec) Issue(
	subject string,
	role authDomain.Role,
	now time.Time,
) (*authDomain.IssuedToken, error) {
	if subject == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token subject is required")
	}
	if !role.IsValid() {
		return nil, authDomain.ErrInvalidRole
	}

	jti, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate token id")
	}

	issuedAt := jwt.NewNumericDate(now)
	expiresAt := jwt.NewNumericDate(now.Add(c.lifetime))

	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
			ID:        jti.String(),
		},
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.key)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.IssuedToken{
		Token:     signed,
		Type:      authDomain.TokenTypeBearer,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// Validate checks, in order: structure, signature over the raw signing input, claim decoding,
// expiry and issuer. The signature is checked before any claim is trusted.
func (c *tokenCodec) Validate(token string, now time.Time) (*authDomain.SecurityContext, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, authDomain.ErrMalformedToken
	}

	signature, err := c.parser.DecodeSegment(parts[2])
	if err != nil {
		return nil, authDomain.ErrMalformedToken
	}

	signingInput := parts[0] + "." + parts[1]
	if err := c.method.Verify(signingInput, signature, c.key); err != nil {
		return nil, authDomain.ErrBadSignature
	}

	claims := &Claims{}
	if _, err := c.parser.ParseWithClaims(token, claims, c.keyFunc); err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, authDomain.ErrBadSignature
		}
		return nil, authDomain.ErrMalformedToken
	}

	if claims.ExpiresAt == nil || claims.Subject == "" {
		return nil, authDomain.ErrMalformedToken
	}

	role := authDomain.Role(claims.Role)
	if !role.IsValid() {
		return nil, authDomain.ErrMalformedToken
	}

	if c.issuer != "" && claims.Issuer != c.issuer {
		return nil, authDomain.ErrMalformedToken
	}

	// A token is still valid at the exact second it expires.
	if now.After(claims.ExpiresAt.Time) {
		return nil, authDomain.ErrExpiredToken
	}

	return &authDomain.SecurityContext{
		Subject: claims.Subject,
		Role:    role,
	}, nil
}

func (c *tokenCodec) keyFunc(_ *jwt.Token) (any, error) {
	return c.key, nil
}
