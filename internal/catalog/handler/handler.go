package handler

import (
	"foodcart_backend/internal/catalog/service"
	"foodcart_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for catalog.
type Handler struct {
	svc *service.Service
}

// New creates a new catalog handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// ListRestaurants retrieves all restaurants.
// GET /api/v1/admin/catalog/restaurants
func (h *Handler) ListRestaurants(c *gin.Context) {
	result, err := h.svc.ListRestaurants(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListProductAvailability retrieves the product by restaurant availability matrix.
// GET /api/v1/admin/catalog/products
func (h *Handler) ListProductAvailability(c *gin.Context) {
	result, err := h.svc.AvailabilityMatrix(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
