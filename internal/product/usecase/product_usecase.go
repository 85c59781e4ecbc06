package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/storefront/internal/database"
	productDomain "github.com/allisson/storefront/internal/product/domain"
)

type productUseCase struct {
	txManager   database.TxManager
	productRepo ProductRepository
	now         func() time.Time
}

// Create validates the input and stores a new product with a UUIDv7 identifier.
func (p *productUseCase) Create(
	ctx context.Context,
	input *productDomain.ProductInput,
) (*productDomain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := p.now().UTC()
	product := &productDomain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Quantity:    input.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := p.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns a product by ID.
func (p *productUseCase) Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error) {
	return p.productRepo.Get(ctx, id)
}

// Update replaces the writable fields of an existing product.
func (p *productUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *productDomain.ProductInput,
) (*productDomain.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var product *productDomain.Product
	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		current, err := p.productRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		current.Name = input.Name
		current.Description = input.Description
		current.Price = input.Price
		current.Quantity = input.Quantity
		current.UpdatedAt = p.now().UTC()

		if err := p.productRepo.Update(ctx, current); err != nil {
			return err
		}
		product = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (p *productUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return p.productRepo.Delete(ctx, id)
}

// List returns a page of products.
func (p *productUseCase) List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error) {
	return p.productRepo.List(ctx, offset, limit)
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(txManager database.TxManager, productRepo ProductRepository) ProductUseCase {
	return &productUseCase{
		txManager:   txManager,
		productRepo: productRepo,
		now:         time.Now,
	}
}
