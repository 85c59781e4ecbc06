package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/storefront/internal/errors"
	productDomain "github.com/allisson/storefront/internal/product/domain"
)

func TestProductRequest_Validate(t *testing.T) {
	price := decimal.RequireFromString("19.90")

	tests := []struct {
		name    string
		req     ProductRequest
		wantErr string
	}{
		{name: "valid", req: ProductRequest{Name: "Mouse", Price: price, Quantity: 0}},
		{name: "missing name", req: ProductRequest{Price: price}, wantErr: "name is required"},
		{name: "blank name", req: ProductRequest{Name: "   ", Price: price}, wantErr: "name"},
		{
			name:    "name with surrounding whitespace",
			req:     ProductRequest{Name: " Mouse", Price: price},
			wantErr: "must not contain leading or trailing whitespace",
		},
		{name: "zero price", req: ProductRequest{Name: "Mouse"}, wantErr: "price must be greater than zero"},
		{
			name:    "explicit zero price",
			req:     ProductRequest{Name: "Mouse", Price: decimal.Zero},
			wantErr: "price must be greater than zero",
		},
		{
			name:    "negative price",
			req:     ProductRequest{Name: "Mouse", Price: decimal.NewFromInt(-1)},
			wantErr: "price must be greater than zero",
		},
		{
			name:    "sub-cent price",
			req:     ProductRequest{Name: "Mouse", Price: decimal.RequireFromString("0.001")},
			wantErr: "price must have at most two decimal places",
		},
		{
			name:    "negative quantity",
			req:     ProductRequest{Name: "Mouse", Price: decimal.NewFromInt(1), Quantity: -1},
			wantErr: "quantity cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProductRequest_UnmarshalPrice(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "json number", body: `{"name":"Mouse","price":19.99}`, expected: "19.99"},
		{name: "json string", body: `{"name":"Mouse","price":"19.99"}`, expected: "19.99"},
		{name: "float-unfriendly value", body: `{"name":"Mouse","price":0.30}`, expected: "0.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ProductRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.True(t, req.Price.Equal(decimal.RequireFromString(tt.expected)), req.Price.String())
			assert.NoError(t, req.Validate())
		})
	}
}

func TestMapProductToResponse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	product := &productDomain.Product{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "Mouse",
		Price:     decimal.RequireFromString("19.9"),
		Quantity:  2,
		CreatedAt: now,
		UpdatedAt: now,
	}

	response := MapProductToResponse(product)

	assert.Equal(t, product.ID.String(), response.ID)
	assert.Equal(t, "19.90", response.Price)
	assert.Equal(t, 2, response.Quantity)
}
