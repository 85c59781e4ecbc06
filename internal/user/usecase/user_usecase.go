// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authDomain "github.com/allisson/storefront/internal/auth/domain"
	"github.com/allisson/storefront/internal/database"
	apperrors "github.com/allisson/storefront/internal/errors"
	"github.com/allisson/storefront/internal/user/domain"
	appValidation "github.com/allisson/storefront/internal/validation"
)

// CreateUserInput contains the input data for provisioning a user
type CreateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // plaintext only until hashed
	Role     string `json:"role"`
}

// SeedUserInput describes a fixture account. Seeds skip the password strength policy so
// development fixtures such as admin/admin can be loaded.
type SeedUserInput struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"` //nolint:gosec // plaintext only until hashed
	Role     string `yaml:"role"`
	Enabled  *bool  `yaml:"enabled"`
}

// SeedResult reports what SeedUsers did.
type SeedResult struct {
	Created []string
	Skipped []string
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	SeedUsers(ctx context.Context, inputs []SeedUserInput) (*SeedResult, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PasswordHasher produces one-way hashes for new passwords
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	passwordHasher PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordHasher PasswordHasher,
) UseCase {
	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
	}
}

// validateCreateUserInput validates provisioning input, including the password strength
// policy (min 8 chars, uppercase, lowercase, number, special char).
func (uc *UserUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		),
		validation.Field(&input.Role,
			validation.Required.Error("role is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateUser validates, hashes and stores a new enabled user
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	user, err := uc.buildUser(input.Username, input.Email, input.Password, input.Role, true)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SeedUsers creates every fixture whose username does not exist yet, in one transaction.
// Existing usernames are skipped, never overwritten.
func (uc *UserUseCase) SeedUsers(ctx context.Context, inputs []SeedUserInput) (*SeedResult, error) {
	for _, input := range inputs {
		if strings.TrimSpace(input.Username) == "" || input.Password == "" {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "seed users require username and password")
		}
		if _, err := authDomain.ParseRole(input.Role); err != nil {
			return nil, domain.ErrInvalidRole
		}
	}

	result := &SeedResult{}
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		for _, input := range inputs {
			username := strings.TrimSpace(input.Username)

			_, err := uc.userRepo.GetByUsername(ctx, username)
			if err == nil {
				result.Skipped = append(result.Skipped, username)
				continue
			}
			if !apperrors.Is(err, domain.ErrUserNotFound) {
				return err
			}

			enabled := true
			if input.Enabled != nil {
				enabled = *input.Enabled
			}

			email := input.Email
			if email == "" {
				email = username + "@localhost"
			}

			user, err := uc.buildUser(username, email, input.Password, input.Role, enabled)
			if err != nil {
				return err
			}
			if err := uc.userRepo.Create(ctx, user); err != nil {
				return err
			}
			result.Created = append(result.Created, username)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetUserByUsername retrieves a user by username
func (uc *UserUseCase) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// buildUser normalizes the role to its canonical form and hashes the password.
func (uc *UserUseCase) buildUser(username, email, password, role string, enabled bool) (*domain.User, error) {
	canonicalRole, err := authDomain.ParseRole(role)
	if err != nil {
		return nil, domain.ErrInvalidRole
	}

	hashedPassword, err := uc.passwordHasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(strings.ToLower(email)),
		Password: hashedPassword,
		Role:     canonicalRole.String(),
		Enabled:  enabled,
	}, nil
}
