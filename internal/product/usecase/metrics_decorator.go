package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/storefront/internal/metrics"
	productDomain "github.com/allisson/storefront/internal/product/domain"
)

// productUseCaseWithMetrics decorates ProductUseCase with metrics instrumentation.
type productUseCaseWithMetrics struct {
	next    ProductUseCase
	metrics metrics.BusinessMetrics
}

// NewProductUseCaseWithMetrics wraps a ProductUseCase with metrics recording.
func NewProductUseCaseWithMetrics(useCase ProductUseCase, m metrics.BusinessMetrics) ProductUseCase {
	return &productUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (p *productUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.Status(err)
	p.metrics.RecordOperation(ctx, "product", operation, status)
	p.metrics.RecordDuration(ctx, "product", operation, time.Since(start), status)
}

// Create records metrics for product creation.
func (p *productUseCaseWithMetrics) Create(
	ctx context.Context,
	input *productDomain.ProductInput,
) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Create(ctx, input)
	p.record(ctx, "product_create", start, err)
	return product, err
}

// Get records metrics for product retrieval.
func (p *productUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Get(ctx, id)
	p.record(ctx, "product_get", start, err)
	return product, err
}

// Update records metrics for product updates.
func (p *productUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input *productDomain.ProductInput,
) (*productDomain.Product, error) {
	start := time.Now()
	product, err := p.next.Update(ctx, id, input)
	p.record(ctx, "product_update", start, err)
	return product, err
}

// Delete records metrics for product deletion.
func (p *productUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := p.next.Delete(ctx, id)
	p.record(ctx, "product_delete", start, err)
	return err
}

// List records metrics for product listing.
func (p *productUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*productDomain.Product, error) {
	start := time.Now()
	products, err := p.next.List(ctx, offset, limit)
	p.record(ctx, "product_list", start, err)
	return products, err
}
