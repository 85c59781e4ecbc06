package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	userUseCase "github.com/allisson/storefront/internal/user/usecase"
)

// seedFile is the YAML document read by seed-users.
type seedFile struct {
	Users []userUseCase.SeedUserInput `yaml:"users"`
}

// DefaultSeedUsers returns the development fixtures loaded when no seed file is given.
func DefaultSeedUsers() []userUseCase.SeedUserInput {
	return []userUseCase.SeedUserInput{
		{Username: "admin", Password: "admin", Role: "ROLE_ADMIN"},
		{Username: "user", Password: "user", Role: "ROLE_USER"},
	}
}

// LoadSeedUsers reads seed users from a YAML reader.
func LoadSeedUsers(r io.Reader) ([]userUseCase.SeedUserInput, error) {
	var file seedFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("seed file is empty")
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(file.Users) == 0 {
		return nil, fmt.Errorf("seed file has no users")
	}
	return file.Users, nil
}

// loadSeedUsersFromPath returns DefaultSeedUsers when path is empty.
func loadSeedUsersFromPath(path string) ([]userUseCase.SeedUserInput, error) {
	if path == "" {
		return DefaultSeedUsers(), nil
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return LoadSeedUsers(f)
}

// RunSeedUsers creates every seed user that does not exist yet. Existing usernames are
// left untouched. Seed passwords bypass the strength policy, so this is meant for
// development and test environments.
func RunSeedUsers(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	writer io.Writer,
	path string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	inputs, err := loadSeedUsersFromPath(path)
	if err != nil {
		return err
	}

	logger.Info("seeding users", slog.Int("count", len(inputs)))

	result, err := useCase.SeedUsers(ctx, inputs)
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if format == "json" {
		output := map[string][]string{
			"created": nonNil(result.Created),
			"skipped": nonNil(result.Skipped),
		}
		if err := writeJSON(writer, output); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(writer, "Created: %s\n", joinOrNone(result.Created))
		_, _ = fmt.Fprintf(writer, "Skipped: %s\n", joinOrNone(result.Skipped))
	}

	logger.Info("users seeded",
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
	)
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
