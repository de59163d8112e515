package handler

import (
	"errors"
	"net/http"

	"inventory-service/internal/model"
	"inventory-service/internal/service"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductHandler maps the HTTP surface onto ProductService calls.
type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// writeError maps a service error to its status code: caller faults (bad
// identifier, missing field) are 400, a missing record is 404, everything
// else is a storage failure surfaced as 500 with the backend's error text.
func writeError(c echo.Context, err error) error {
	var missing *model.MissingFieldError
	switch {
	case errors.Is(err, model.ErrInvalidID):
		return c.String(http.StatusBadRequest, err.Error())
	case errors.As(err, &missing):
		return c.String(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return c.String(http.StatusNotFound, err.Error())
	default:
		return c.String(http.StatusInternalServerError, err.Error())
	}
}

// ListProducts handles GET /api/products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.svc.List(c.Request().Context())
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return writeError(c, err)
	}
	if len(products) == 0 {
		return c.String(http.StatusNotFound, "No products found")
	}

	log.Info("products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		log.Error("failed to get product", zap.String("product_id", id), zap.Error(err))
		return writeError(c, err)
	}

	log.Info("product retrieved",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name))
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products. The response body is the created
// identifier as plain text.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var change model.ProductChange
	if err := c.Bind(&change); err != nil {
		log.Error("invalid request data", zap.Error(err))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	product, err := h.svc.Create(c.Request().Context(), change)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return writeError(c, err)
	}

	return c.String(http.StatusOK, product.ID)
}

// UpdateProduct handles PUT /api/products/:id with a partial payload.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var change model.ProductChange
	if err := c.Bind(&change); err != nil {
		log.Error("invalid request data", zap.String("product_id", id), zap.Error(err))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	product, err := h.svc.Update(c.Request().Context(), id, change)
	if err != nil {
		log.Error("failed to update product", zap.String("product_id", id), zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		log.Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		return writeError(c, err)
	}

	return c.String(http.StatusOK, "Product deleted")
}
