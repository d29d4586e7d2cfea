package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

type testJWTConfig struct{}

func (testJWTConfig) GetJWTAccessSecret() string { return "test-secret" }

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newAdminEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/admin", AuthRequired(testJWTConfig{}), RequireRole("manager"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetIdentity(c).UserID()})
	})
	return engine
}

func TestAuthRequiredAndRole(t *testing.T) {
	valid := jwt.MapClaims{
		"sub":   float64(42),
		"type":  "access",
		"roles": []interface{}{"manager"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	staff := jwt.MapClaims{
		"sub":   "7",
		"type":  "access",
		"roles": []interface{}{"courier"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	refresh := jwt.MapClaims{
		"sub":  "7",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, valid, "other"), http.StatusUnauthorized},
		{"refresh token", "Bearer " + signToken(t, refresh, "test-secret"), http.StatusUnauthorized},
		{"missing role", "Bearer " + signToken(t, staff, "test-secret"), http.StatusForbidden},
		{"manager", "Bearer " + signToken(t, valid, "test-secret"), http.StatusOK},
	}

	engine := newAdminEngine()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected status %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
			if rec.Header().Get(RequestIDHeader) == "" {
				t.Fatal("expected request id header to be set")
			}
		})
	}
}

func TestRequestIDKeepsCallerValue(t *testing.T) {
	engine := newAdminEngine()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected request id abc-123, got %q", got)
	}
}

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 2, nil)
	engine := gin.New()
	engine.GET("/", limiter.RateLimit(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusNoContent || codes[1] != http.StatusNoContent {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %d", codes[2])
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/admin", RequireRole("manager"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without an identity, got %d", rec.Code)
	}
}
