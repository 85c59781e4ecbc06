package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/allisson/storefront/internal/auth/service"
)

// RunCreateSigningKey generates a random token signing key and prints it as environment
// variables. When kmsKeyURI is set the key is encrypted with that KMS key first, and the
// server decrypts it at startup.
//
// For local development use kmsKeyURI="base64key://<32-byte-base64-key>". Never use
// localsecrets in production.
func RunCreateSigningKey(
	ctx context.Context,
	loader *authService.SigningKeyLoader,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	key, err := authService.GenerateSigningKey()
	if err != nil {
		return err
	}
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	encoded, err := loader.Wrap(ctx, key, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to wrap signing key: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Token signing key")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	}
	_, _ = fmt.Fprintf(writer, "AUTH_SIGNING_KEY=\"%s\"\n", encoded)

	logger.Info("signing key generated", slog.Bool("kms", kmsKeyURI != ""))
	return nil
}
