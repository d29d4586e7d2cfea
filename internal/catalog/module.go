// Package catalog provides the food catalog bounded context module.
package catalog

import (
	"foodcart_backend/internal/catalog/handler"
	"foodcart_backend/internal/catalog/repository"
	"foodcart_backend/internal/catalog/service"
	apphttp "foodcart_backend/internal/http"
	"foodcart_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)

	return &Module{
		handler: handler.New(svc),
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Repository returns the repository for adapters.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts catalog routes on the admin group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	adminGroup := ctx.Admin.Group("/catalog")
	adminGroup.GET("/products", m.handler.ListProductAvailability)
	adminGroup.GET("/restaurants", m.handler.ListRestaurants)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
