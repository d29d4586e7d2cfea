package http

import (
	"context"

	"foodcart_backend/platform/config"
	"foodcart_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App holds the fully initialized application dependencies.
// It is populated by main.go (the composition root) and passed to the router.
type App struct {
	Config RouterConfig
	Logger *logger.Logger
	// Health is used for readiness checks, e.g. a database ping.
	Health HealthChecker
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
