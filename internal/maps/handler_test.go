package maps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/httpkit"
	"foodcart_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

type stubResolver struct {
	coordinate places.Coordinate
	err        error
}

func (s stubResolver) Resolve(context.Context, string) (places.Coordinate, error) {
	return s.coordinate, s.err
}

func TestGeocodeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		resolver stubResolver
		want     int
		message  string
	}{
		{name: "resolved", query: "?q=Moscow", resolver: stubResolver{coordinate: places.Coordinate{Lat: 55.75, Lon: 37.61}}, want: http.StatusOK},
		{name: "missing query", query: "", want: http.StatusBadRequest},
		{name: "blank query", query: "?q=%20%20", want: http.StatusBadRequest},
		{name: "no match", query: "?q=Nowhere", resolver: stubResolver{err: places.NoMatch("Nowhere")}, want: http.StatusNotFound, message: "address not found"},
		{name: "provider down", query: "?q=Moscow", resolver: stubResolver{err: places.ProviderError("Moscow", errors.New("503"))}, want: http.StatusBadGateway, message: "geocoding service unavailable"},
		{name: "store down", query: "?q=Moscow", resolver: stubResolver{err: errors.New("db down")}, want: http.StatusInternalServerError, message: "failed to resolve address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/maps/geocode", NewHandler(tt.resolver, validator.New()).Geocode)

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/maps/geocode"+tt.query, nil))
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}

			if tt.message != "" {
				var body httpkit.ErrorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if body.Error != tt.message {
					t.Fatalf("expected message %q, got %q", tt.message, body.Error)
				}
			}

			if tt.want == http.StatusOK {
				var body GeocodeResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if body.Lat != 55.75 || body.Lon != 37.61 {
					t.Fatalf("unexpected body %+v", body)
				}
			}
		})
	}
}
