// Package fulfillment provides the order fulfillment bounded context module.
package fulfillment

import (
	"foodcart_backend/internal/fulfillment/handler"
	"foodcart_backend/internal/fulfillment/ports"
	"foodcart_backend/internal/fulfillment/service"
	apphttp "foodcart_backend/internal/http"
	"foodcart_backend/platform/config"
	"foodcart_backend/platform/logger"
)

// ModuleConfig combines the config interfaces the module reads.
type ModuleConfig interface {
	config.FulfillmentConfig
	config.PhoneConfig
}

// Module is the fulfillment bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the fulfillment module.
func NewModule(catalog ports.CatalogReader, orders ports.OrderReader, geocoder ports.Geocoder, cfg ModuleConfig, log *logger.Logger) *Module {
	svc := service.New(catalog, orders, geocoder, cfg.GetFulfillmentWorkers(), log)
	return &Module{
		handler: handler.New(svc, cfg.GetPhoneRegion()),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "fulfillment"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetRetryScheduler enables background geocode retries.
func (m *Module) SetRetryScheduler(retry ports.GeocodeRetryScheduler) {
	m.service.SetRetryScheduler(retry)
}

// RegisterRoutes mounts fulfillment routes on the admin group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/orders", m.handler.ListOrders)
}

var _ apphttp.Module = (*Module)(nil)
