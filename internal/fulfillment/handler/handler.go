package handler

import (
	"foodcart_backend/internal/fulfillment/service"
	"foodcart_backend/internal/fulfillment/transport"
	"foodcart_backend/platform/apperr"
	"foodcart_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for order fulfillment.
type Handler struct {
	svc         *service.Service
	phoneRegion string
}

// New creates a new fulfillment handler.
func New(svc *service.Service, phoneRegion string) *Handler {
	return &Handler{svc: svc, phoneRegion: phoneRegion}
}

// ListOrders returns every pending order with its ranked restaurants.
// GET /api/v1/admin/orders
func (h *Handler) ListOrders(c *gin.Context) {
	results, err := h.svc.ListFulfillments(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "failed to load orders", err).WithOp("fulfillment.ListOrders"))
		return
	}

	items := make([]transport.OrderResponse, 0, len(results))
	for _, result := range results {
		items = append(items, transport.ToOrderResponse(result, h.phoneRegion))
	}
	httpkit.OK(c, transport.OrderListResponse{Items: items, Total: len(items)})
}
