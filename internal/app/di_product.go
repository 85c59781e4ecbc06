package app

import (
	"fmt"
	"sync"

	"github.com/allisson/storefront/internal/database"
	productHTTP "github.com/allisson/storefront/internal/product/http"
	productRepository "github.com/allisson/storefront/internal/product/repository"
	productUseCase "github.com/allisson/storefront/internal/product/usecase"
)

type productComponents struct {
	productRepository productUseCase.ProductRepository
	productUseCase    productUseCase.ProductUseCase
	productHandler    *productHTTP.ProductHandler

	productRepositoryInit sync.Once
	productUseCaseInit    sync.Once
	productHandlerInit    sync.Once
}

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (productUseCase.ProductRepository, error) {
	var err error
	c.productRepositoryInit.Do(func() {
		c.productRepository, err = c.initProductRepository()
		if err != nil {
			c.setInitError("productRepository", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("productRepository"); storedErr != nil {
		return nil, storedErr
	}
	return c.productRepository, nil
}

// ProductUseCase returns the product use case, decorated with metrics when enabled.
func (c *Container) ProductUseCase() (productUseCase.ProductUseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.setInitError("productUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("productUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// ProductHandler returns the product HTTP handler.
func (c *Container) ProductHandler() (*productHTTP.ProductHandler, error) {
	var err error
	c.productHandlerInit.Do(func() {
		c.productHandler, err = c.initProductHandler()
		if err != nil {
			c.setInitError("productHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("productHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.productHandler, nil
}

func (c *Container) initProductRepository() (productUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case database.DriverPostgres:
		return productRepository.NewPostgreSQLProductRepository(db), nil
	case database.DriverMySQL:
		return productRepository.NewMySQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initProductUseCase() (productUseCase.ProductUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for product use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	useCase := productUseCase.NewProductUseCase(txManager, productRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for product use case: %w", err)
		}
		useCase = productUseCase.NewProductUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

func (c *Container) initProductHandler() (*productHTTP.ProductHandler, error) {
	useCase, err := c.ProductUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get product use case for product handler: %w", err)
	}
	return productHTTP.NewProductHandler(useCase, c.Logger()), nil
}
