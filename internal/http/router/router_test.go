package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apphttp "foodcart_backend/internal/http"
	"foodcart_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type testRouterConfig struct{}

func (testRouterConfig) GetHTTPAddr() string        { return ":0" }
func (testRouterConfig) GetCORSAllowAll() bool      { return false }
func (testRouterConfig) GetCORSOrigins() []string   { return []string{"http://localhost:3000"} }
func (testRouterConfig) GetCORSAllowCreds() bool    { return true }
func (testRouterConfig) GetJWTAccessSecret() string { return "test-secret" }

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type probeModule struct{}

func (probeModule) Name() string { return "probe" }

func (probeModule) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/public", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	ctx.Admin.GET("/secret", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func newTestEngine(health apphttp.HealthChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(&apphttp.App{
		Config:  testRouterConfig{},
		Logger:  logger.Discard(),
		Health:  health,
		Modules: []apphttp.Module{probeModule{}},
	})
}

func TestRouterGroups(t *testing.T) {
	engine := newTestEngine(pingFunc(func(context.Context) error { return nil }))

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/health", want: http.StatusOK},
		{path: "/api/v1/public", want: http.StatusNoContent},
		{path: "/api/v1/admin/secret", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.want {
			t.Fatalf("%s: expected %d, got %d", tt.path, tt.want, rec.Code)
		}
	}
}

func TestHealthReportsDatabaseFailure(t *testing.T) {
	engine := newTestEngine(pingFunc(func(context.Context) error { return errors.New("down") }))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
