// Package domain defines the product catalog entities.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/allisson/storefront/internal/errors"
)

// PriceScale is the number of fractional digits stored for a price.
const PriceScale = 2

// Product is a catalog item. Price is an exact decimal stored as NUMERIC.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput carries the writable fields for create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// Domain-specific errors for product operations.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")

	// ErrNameRequired indicates the product name is missing.
	ErrNameRequired = errors.Wrap(errors.ErrInvalidInput, "name is required")

	// ErrInvalidPrice indicates a non-positive price.
	ErrInvalidPrice = errors.Wrap(errors.ErrInvalidInput, "price must be greater than zero")

	// ErrInvalidPriceScale indicates a price with more fractional digits than PriceScale.
	ErrInvalidPriceScale = errors.Wrap(errors.ErrInvalidInput, "price must have at most two decimal places")

	// ErrInvalidQuantity indicates a negative stock quantity.
	ErrInvalidQuantity = errors.Wrap(errors.ErrInvalidInput, "quantity cannot be negative")
)

// Validate enforces the catalog invariants on a write.
func (in *ProductInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if !in.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if !in.Price.Equal(in.Price.Truncate(PriceScale)) {
		return ErrInvalidPriceScale
	}
	if in.Quantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
