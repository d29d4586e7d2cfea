package router

import (
	"context"
	"net/http"
	"time"

	apphttp "foodcart_backend/internal/http"
	"foodcart_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	healthTimeout   = 2 * time.Second
	requestsPerSec  = 20
	requestBurst    = 40
	corsMaxAge      = 12 * time.Hour
	managerRoleName = "manager"
)

// New builds the Gin engine and mounts every module on the shared groups.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(requestsPerSec), requestBurst, app.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/api/health", func(c *gin.Context) {
		if app.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := app.Health.Ping(ctx); err != nil {
				httpkit.Error(c, http.StatusServiceUnavailable, "database unavailable", nil)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := httpkit.AuthRequired(app.Config)
	v1 := engine.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(auth)
	admin := protected.Group("/admin")
	admin.Use(httpkit.RequireRole(managerRoleName))

	ctx := &apphttp.RouterContext{
		Engine:         engine,
		V1:             v1,
		Protected:      protected,
		Admin:          admin,
		Config:         app.Config,
		AuthMiddleware: auth,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module registered", "module", module.Name())
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpkit.RequestIDHeader},
		ExposeHeaders:    []string{httpkit.RequestIDHeader},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           corsMaxAge,
	}
	if cfg.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.GetCORSOrigins()
	}
	return corsCfg
}
