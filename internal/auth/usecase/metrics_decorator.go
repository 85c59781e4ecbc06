package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	"github.com/allisson/storefront/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login attempts.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.IssuedToken, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := metrics.Status(err)

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// Authenticate records metrics for token validation.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	token string,
) (*authDomain.SecurityContext, error) {
	start := time.Now()
	sc, err := a.next.Authenticate(ctx, token)

	status := metrics.Status(err)

	a.metrics.RecordOperation(ctx, "auth", "token_validate", status)
	a.metrics.RecordDuration(ctx, "auth", "token_validate", time.Since(start), status)

	return sc, err
}
