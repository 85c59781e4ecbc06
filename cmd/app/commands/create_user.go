package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	userUseCase "github.com/allisson/storefront/internal/user/usecase"
)

// createUserOutput is the JSON shape printed by create-user.
type createUserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// RunCreateUser provisions a single user. The password must satisfy the strength policy.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	input userUseCase.CreateUserInput,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("creating user", slog.String("username", input.Username), slog.String("role", input.Role))

	user, err := useCase.CreateUser(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	output := createUserOutput{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}

	if format == "json" {
		if err := writeJSON(writer, output); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(writer, "User created successfully!")
		_, _ = fmt.Fprintf(writer, "ID: %s\n", output.ID)
		_, _ = fmt.Fprintf(writer, "Username: %s\n", output.Username)
		_, _ = fmt.Fprintf(writer, "Email: %s\n", output.Email)
		_, _ = fmt.Fprintf(writer, "Role: %s\n", output.Role)
	}

	logger.Info("user created successfully", slog.String("id", output.ID))
	return nil
}
