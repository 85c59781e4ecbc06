package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	apperrors "github.com/allisson/storefront/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for keyURI.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// SigningKeyLoader resolves the process-wide token signing key.
type SigningKeyLoader struct {
	kmsService KMSService
}

// NewSigningKeyLoader creates a SigningKeyLoader.
func NewSigningKeyLoader(kmsService KMSService) *SigningKeyLoader {
	return &SigningKeyLoader{kmsService: kmsService}
}

// Load decodes encodedKey (standard base64). When kmsKeyURI is set the decoded bytes are KMS
// ciphertext and are decrypted first. An empty encodedKey yields a random key and ephemeral=true;
// tokens signed with it do not survive a restart.
func (l *SigningKeyLoader) Load(
	ctx context.Context,
	encodedKey string,
	kmsKeyURI string,
) (key []byte, ephemeral bool, err error) {
	if encodedKey == "" {
		key, err = GenerateSigningKey()
		if err != nil {
			return nil, false, err
		}
		return key, true, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, false, apperrors.Wrap(err, "failed to decode signing key")
	}

	if kmsKeyURI != "" {
		decoded, err = l.decrypt(ctx, kmsKeyURI, decoded)
		if err != nil {
			return nil, false, err
		}
	}

	if len(decoded) < MinSigningKeyLength {
		return nil, false, ErrSigningKeyTooShort
	}

	return decoded, false, nil
}

// Wrap encrypts key with the KMS keeper at kmsKeyURI and returns it base64 encoded, ready to be
// used as AUTH_SIGNING_KEY. Without a KMS URI the key is only encoded.
func (l *SigningKeyLoader) Wrap(ctx context.Context, key []byte, kmsKeyURI string) (string, error) {
	if kmsKeyURI == "" {
		return base64.StdEncoding.EncodeToString(key), nil
	}

	keeper, err := l.kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return "", err
	}
	defer keeper.Close() //nolint:errcheck

	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt signing key")
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (l *SigningKeyLoader) decrypt(ctx context.Context, kmsKeyURI string, ciphertext []byte) ([]byte, error) {
	keeper, err := l.kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, err
	}
	defer keeper.Close() //nolint:errcheck

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt signing key")
	}
	return plaintext, nil
}

// GenerateSigningKey returns a new random key of MinSigningKeyLength bytes.
func GenerateSigningKey() ([]byte, error) {
	key := make([]byte, MinSigningKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, apperrors.Wrap(err, "failed to generate signing key")
	}
	return key, nil
}
