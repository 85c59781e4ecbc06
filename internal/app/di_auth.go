package app

import (
	"context"
	"fmt"
	"sync"

	authHTTP "github.com/allisson/storefront/internal/auth/http"
	authService "github.com/allisson/storefront/internal/auth/service"
	authUseCase "github.com/allisson/storefront/internal/auth/usecase"
)

type authComponents struct {
	kmsService         authService.KMSService
	signingKeyLoader   *authService.SigningKeyLoader
	signingKey         []byte
	tokenCodec         authService.TokenCodec
	credentialVerifier authService.CredentialVerifier
	principalDirectory authUseCase.PrincipalDirectory
	authUseCase        authUseCase.AuthUseCase
	authHandler        *authHTTP.AuthHandler

	kmsServiceInit         sync.Once
	signingKeyLoaderInit   sync.Once
	signingKeyInit         sync.Once
	tokenCodecInit         sync.Once
	credentialVerifierInit sync.Once
	principalDirectoryInit sync.Once
	authUseCaseInit        sync.Once
	authHandlerInit        sync.Once
}

// KMSService returns the gocloud.dev secrets keeper opener.
func (c *Container) KMSService() authService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = authService.NewKMSService()
	})
	return c.kmsService
}

// SigningKeyLoader returns the loader that decodes (and optionally KMS decrypts) the signing key.
func (c *Container) SigningKeyLoader() *authService.SigningKeyLoader {
	c.signingKeyLoaderInit.Do(func() {
		c.signingKeyLoader = authService.NewSigningKeyLoader(c.KMSService())
	})
	return c.signingKeyLoader
}

// SigningKey returns the process-wide token signing key.
func (c *Container) SigningKey(ctx context.Context) ([]byte, error) {
	var err error
	c.signingKeyInit.Do(func() {
		c.signingKey, err = c.initSigningKey(ctx)
		if err != nil {
			c.setInitError("signingKey", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("signingKey"); storedErr != nil {
		return nil, storedErr
	}
	return c.signingKey, nil
}

// TokenCodec returns the JWT codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	var err error
	c.tokenCodecInit.Do(func() {
		c.tokenCodec, err = c.initTokenCodec()
		if err != nil {
			c.setInitError("tokenCodec", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("tokenCodec"); storedErr != nil {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// CredentialVerifier returns the password verifier, also used as the user password hasher.
func (c *Container) CredentialVerifier() authService.CredentialVerifier {
	c.credentialVerifierInit.Do(func() {
		c.credentialVerifier = authService.NewCredentialVerifier()
	})
	return c.credentialVerifier
}

// PrincipalDirectory returns the directory backed by the user repository.
func (c *Container) PrincipalDirectory() (authUseCase.PrincipalDirectory, error) {
	var err error
	c.principalDirectoryInit.Do(func() {
		c.principalDirectory, err = c.initPrincipalDirectory()
		if err != nil {
			c.setInitError("principalDirectory", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("principalDirectory"); storedErr != nil {
		return nil, storedErr
	}
	return c.principalDirectory, nil
}

// AuthUseCase returns the authentication gate.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.setInitError("authUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("authUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the login and identity HTTP handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.setInitError("authHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("authHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.authHandler, nil
}

func (c *Container) initSigningKey(ctx context.Context) ([]byte, error) {
	key, ephemeral, err := c.SigningKeyLoader().Load(ctx, c.config.AuthSigningKey, c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing key: %w", err)
	}
	if ephemeral {
		c.Logger().Warn("AUTH_SIGNING_KEY is not set, using an ephemeral signing key; " +
			"issued tokens will not survive a restart")
	}
	return key, nil
}

func (c *Container) initTokenCodec() (authService.TokenCodec, error) {
	key, err := c.SigningKey(context.Background())
	if err != nil {
		return nil, err
	}
	codec, err := authService.NewTokenCodec(key, c.config.AuthTokenIssuer, c.config.AuthTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}
	return codec, nil
}

func (c *Container) initPrincipalDirectory() (authUseCase.PrincipalDirectory, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for principal directory: %w", err)
	}
	return authUseCase.NewPrincipalDirectory(userRepo), nil
}

func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	directory, err := c.PrincipalDirectory()
	if err != nil {
		return nil, err
	}

	codec, err := c.TokenCodec()
	if err != nil {
		return nil, err
	}

	useCase := authUseCase.NewAuthUseCase(directory, c.CredentialVerifier(), codec)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		useCase = authUseCase.NewAuthUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(useCase, c.Logger()), nil
}
