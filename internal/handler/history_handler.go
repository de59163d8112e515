package handler

import (
	"net/http"

	"inventory-service/internal/service"
	"inventory-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HistoryHandler serves the read-only audit trail.
type HistoryHandler struct {
	svc *service.ProductService
}

func NewHistoryHandler(svc *service.ProductService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// GetProductHistory handles GET /api/producthistory.
func (h *HistoryHandler) GetProductHistory(c echo.Context) error {
	log := logger.FromContext(c)

	history, err := h.svc.History(c.Request().Context())
	if err != nil {
		log.Error("failed to list product history", zap.Error(err))
		return writeError(c, err)
	}
	if len(history) == 0 {
		return c.String(http.StatusNotFound, "No product history found")
	}

	log.Info("product history retrieved", zap.Int("count", len(history)))
	return c.JSON(http.StatusOK, history)
}
