package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geerin/backend/internal/domain"
	"github.com/geerin/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog *usecase.CatalogService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *usecase.CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "geerin-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the merged remote+local catalog. An upstream failure
// fails the whole request; no partial listing is served.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct adds a local product
func (h *Handler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.catalog.CreateLocalProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct rewrites a local product. The id arrives as a query parameter,
// same as delete.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	product, err := h.catalog.UpdateLocalProduct(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or cannot update remote product"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a local product identified by the id query parameter
// and returns the deleted object. Remote ids are never deletable and answer
// 404 like any absent id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	product, err := h.catalog.DeleteLocalProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found or cannot delete remote product"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetProductDetail resolves a product with its lazily-fetched description
func (h *Handler) GetProductDetail(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}

	product, err := h.catalog.GetProductDetail(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch product details"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product details"})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// queryID parses the required id query parameter, answering 400 itself when
// it is missing or malformed
func queryID(c *gin.Context) (int, bool) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
