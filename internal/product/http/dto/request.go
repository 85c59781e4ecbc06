// Package dto provides data transfer objects for the product HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	productDomain "github.com/allisson/storefront/internal/product/domain"
	appValidation "github.com/allisson/storefront/internal/validation"
)

// ProductRequest is the body of product create and update requests.
// Price accepts a JSON number or a decimal string and is parsed exactly.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Validate checks the request fields.
func (r *ProductRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			appValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 2000)),
		validation.Field(&r.Price, validation.By(validatePrice)),
		validation.Field(&r.Quantity,
			validation.Min(0).Error("quantity cannot be negative"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// validatePrice rejects zero, negative and sub-cent prices.
func validatePrice(value any) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return validation.NewError("validation_price_type", "must be a decimal")
	}
	if !price.IsPositive() {
		return validation.NewError("validation_price_positive", "price must be greater than zero")
	}
	if !price.Equal(price.Truncate(productDomain.PriceScale)) {
		return validation.NewError("validation_price_scale", "price must have at most two decimal places")
	}
	return nil
}

// ToProductInput converts the request to a domain input.
func (r *ProductRequest) ToProductInput() *productDomain.ProductInput {
	return &productDomain.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}
