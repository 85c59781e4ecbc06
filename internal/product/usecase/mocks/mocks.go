// Package mocks provides mock implementations of the product use case interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	productDomain "github.com/allisson/storefront/internal/product/domain"
)

// MockProductRepository is a mock implementation of ProductRepository for testing.
type MockProductRepository struct {
	mock.Mock
}

// Create mocks the Create method of ProductRepository.
func (m *MockProductRepository) Create(ctx context.Context, product *productDomain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// Get mocks the Get method of ProductRepository.
func (m *MockProductRepository) Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

// Update mocks the Update method of ProductRepository.
func (m *MockProductRepository) Update(ctx context.Context, product *productDomain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// Delete mocks the Delete method of ProductRepository.
func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List mocks the List method of ProductRepository.
func (m *MockProductRepository) List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productDomain.Product), args.Error(1)
}

// MockProductUseCase is a mock implementation of ProductUseCase for testing.
type MockProductUseCase struct {
	mock.Mock
}

// Create mocks the Create method of ProductUseCase.
func (m *MockProductUseCase) Create(
	ctx context.Context,
	input *productDomain.ProductInput,
) (*productDomain.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

// Get mocks the Get method of ProductUseCase.
func (m *MockProductUseCase) Get(ctx context.Context, id uuid.UUID) (*productDomain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

// Update mocks the Update method of ProductUseCase.
func (m *MockProductUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *productDomain.ProductInput,
) (*productDomain.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productDomain.Product), args.Error(1)
}

// Delete mocks the Delete method of ProductUseCase.
func (m *MockProductUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// List mocks the List method of ProductUseCase.
func (m *MockProductUseCase) List(ctx context.Context, offset, limit int) ([]*productDomain.Product, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*productDomain.Product), args.Error(1)
}
