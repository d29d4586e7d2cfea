package maps

import (
	"context"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/apperr"
	"foodcart_backend/platform/httpkit"
	"foodcart_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Resolver resolves an address through the geocode cache.
type Resolver interface {
	Resolve(ctx context.Context, address string) (places.Coordinate, error)
}

// Handler exposes the maps geocode endpoint.
type Handler struct {
	resolver Resolver
	val      *validator.Validator
}

func NewHandler(resolver Resolver, val *validator.Validator) *Handler {
	return &Handler{resolver: resolver, val: val}
}

// Geocode handles GET /api/v1/maps/geocode?q=...
func (h *Handler) Geocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request"))
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("query 'q' is required").WithDetails(err.Error()))
		return
	}

	coordinate, err := h.resolver.Resolve(c.Request.Context(), req.Query)
	if err != nil {
		httpkit.HandleError(c, geocodeError(err).WithOp("maps.Geocode"))
		return
	}

	httpkit.OK(c, GeocodeResponse{Address: req.Query, Lat: coordinate.Lat, Lon: coordinate.Lon})
}

func geocodeError(err error) *apperr.Error {
	switch {
	case places.IsNoMatch(err):
		return apperr.NotFound("address not found")
	case places.IsProviderError(err):
		return apperr.Unavailable("geocoding service unavailable", err)
	default:
		return apperr.Wrap(apperr.KindInternal, "failed to resolve address", err)
	}
}
