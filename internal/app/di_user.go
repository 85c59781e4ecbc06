package app

import (
	"fmt"
	"sync"

	"github.com/allisson/storefront/internal/database"
	userHTTP "github.com/allisson/storefront/internal/user/http"
	userRepository "github.com/allisson/storefront/internal/user/repository"
	userUseCase "github.com/allisson/storefront/internal/user/usecase"
)

type userComponents struct {
	userRepository userUseCase.UserRepository
	userUseCase    userUseCase.UseCase
	userHandler    *userHTTP.UserHandler

	userRepositoryInit sync.Once
	userUseCaseInit    sync.Once
	userHandlerInit    sync.Once
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.setInitError("userRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("userRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// UserUseCase returns the user provisioning use case.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.setInitError("userUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("userUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		c.userHandler, err = c.initUserHandler()
		if err != nil {
			c.setInitError("userHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("userHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.userHandler, nil
}

func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return userRepository.NewPostgreSQLUserRepository(db), nil
	case database.DriverMySQL:
		return userRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initUserUseCase() (userUseCase.UseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	return userUseCase.NewUserUseCase(txManager, userRepo, c.CredentialVerifier()), nil
}

func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}
	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}
