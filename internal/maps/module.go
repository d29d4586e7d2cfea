package maps

import (
	apphttp "foodcart_backend/internal/http"
	"foodcart_backend/platform/validator"
)

// Module wires the maps geocode HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(resolver Resolver, val *validator.Validator) *Module {
	return &Module{handler: NewHandler(resolver, val)}
}

func (m *Module) Name() string {
	return "maps"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/maps")
	group.GET("/geocode", m.handler.Geocode)
}

var _ apphttp.Module = (*Module)(nil)
