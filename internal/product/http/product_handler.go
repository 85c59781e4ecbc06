// Package http provides HTTP handlers for the product catalog.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/storefront/internal/httputil"
	"github.com/allisson/storefront/internal/product/http/dto"
	productUseCase "github.com/allisson/storefront/internal/product/usecase"
)

var errInvalidProductID = errors.New("invalid product id")

// ProductHandler handles product catalog HTTP requests.
type ProductHandler struct {
	productUseCase productUseCase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productUseCase productUseCase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// ListHandler returns a page of products.
// GET /api/products?offset=0&limit=50 - Requires a valid token.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductsToListResponse(products))
}

// GetHandler returns a single product.
// GET /api/products/:id - Requires a valid token.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// CreateHandler adds a product to the catalog.
// POST /api/products - Requires ADMIN role.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Create(c.Request.Context(), req.ToProductInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProductToResponse(product))
}

// UpdateHandler replaces a product's writable fields.
// PUT /api/products/:id - Requires ADMIN role.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Update(c.Request.Context(), id, req.ToProductInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// DeleteHandler removes a product.
// DELETE /api/products/:id - Requires ADMIN role.
// Returns 204 No Content.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.productUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ProductHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, errInvalidProductID, h.logger)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProductHandler) bindRequest(c *gin.Context) (*dto.ProductRequest, bool) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return nil, false
	}
	return &req, true
}
