package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	"github.com/allisson/storefront/internal/auth/usecase"
	usecaseMocks "github.com/allisson/storefront/internal/auth/usecase/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	mockNext := &usecaseMocks.MockAuthUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()
	input := &authDomain.LoginInput{Username: "admin", Password: "admin"}

	t.Run("Login success", func(t *testing.T) {
		output := &authDomain.IssuedToken{Token: "token", Type: authDomain.TokenTypeBearer}

		mockNext.On("Login", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "denied").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "denied").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate success", func(t *testing.T) {
		sc := &authDomain.SecurityContext{Subject: "admin", Role: authDomain.RoleAdmin}

		mockNext.On("Authenticate", ctx, "token").Return(sc, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "token_validate", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "token_validate", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Authenticate(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, sc, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate error", func(t *testing.T) {
		expectedErr := errors.New("error")

		mockNext.On("Authenticate", ctx, "bad").Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "token_validate", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "token_validate", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Authenticate(ctx, "bad")
		assert.Error(t, err)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})
}
