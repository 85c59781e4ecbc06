package dto

import (
	"time"

	productDomain "github.com/allisson/storefront/internal/product/domain"
)

// ProductResponse represents a product in API responses. Price is a fixed two-digit decimal string.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
}

// MapProductToResponse converts a domain product to its API representation.
func MapProductToResponse(product *productDomain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(productDomain.PriceScale),
		Quantity:    product.Quantity,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// MapProductsToListResponse converts a page of domain products.
func MapProductsToListResponse(products []*productDomain.Product) ListProductsResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		items = append(items, MapProductToResponse(product))
	}
	return ListProductsResponse{Data: items}
}
