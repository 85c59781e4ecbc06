// Package usecase implements the product catalog business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	productDomain "github.com/allisson/storefront/internal/product/domain"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *productDomain.Product) error
	Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error)
	Update(ctx context.Context, product *productDomain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error)
}

// ProductUseCase defines the catalog operations exposed to the HTTP layer.
type ProductUseCase interface {
	Create(ctx context.Context, input *productDomain.ProductInput) (*productDomain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *productDomain.ProductInput) (*productDomain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error)
}
