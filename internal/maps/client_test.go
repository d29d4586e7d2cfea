package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/logger"
)

type testGeocoderConfig struct {
	url string
}

func (c testGeocoderConfig) GetGeocoderAPIKey() string         { return "test-key" }
func (c testGeocoderConfig) GetGeocoderURL() string            { return c.url }
func (c testGeocoderConfig) GetGeocoderTimeout() time.Duration { return time.Second }

func newTestClient(t *testing.T, status int, body string) (*Client, func() url.Values) {
	t.Helper()
	var (
		mu       sync.Mutex
		captured url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		captured = r.URL.Query()
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	lastQuery := func() url.Values {
		mu.Lock()
		defer mu.Unlock()
		return captured
	}
	return NewClient(testGeocoderConfig{url: srv.URL}, logger.Discard()), lastQuery
}

const moscowPayload = `{"response":{"GeoObjectCollection":{"featureMember":[
	{"GeoObject":{"name":"Red Square","Point":{"pos":"37.617635 55.755814"}}},
	{"GeoObject":{"name":"Moscow","Point":{"pos":"37.622504 55.753215"}}}
]}}}`

func TestGeocodeReadsLongitudeFirst(t *testing.T) {
	client, lastQuery := newTestClient(t, http.StatusOK, moscowPayload)

	candidates, err := client.Geocode(context.Background(), "Moscow, Red Square")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	want := places.Coordinate{Lat: 55.755814, Lon: 37.617635}
	if candidates[0].Coordinate != want {
		t.Fatalf("expected %+v, got %+v", want, candidates[0].Coordinate)
	}

	query := lastQuery()
	if query.Get("geocode") != "Moscow, Red Square" || query.Get("apikey") != "test-key" || query.Get("format") != "json" {
		t.Fatalf("unexpected query %v", query)
	}
}

func TestGeocodeEmptyResult(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`)

	candidates, err := client.Geocode(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("empty result is not an error: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(candidates))
	}
}

func TestGeocodeSkipsMalformedLowerCandidates(t *testing.T) {
	body := `{"response":{"GeoObjectCollection":{"featureMember":[
	{"GeoObject":{"name":"Red Square","Point":{"pos":"37.617635 55.755814"}}},
	{"GeoObject":{"name":"Broken","Point":{"pos":""}}}
]}}}`
	client, _ := newTestClient(t, http.StatusOK, body)

	candidates, err := client.Geocode(context.Background(), "Moscow, Red Square")
	if err != nil {
		t.Fatalf("a valid top match must not fail the lookup: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected the broken candidate to be dropped, got %d", len(candidates))
	}
	want := places.Coordinate{Lat: 55.755814, Lon: 37.617635}
	if candidates[0].Coordinate != want {
		t.Fatalf("expected %+v, got %+v", want, candidates[0].Coordinate)
	}
}

func TestGeocodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "forbidden", status: http.StatusForbidden, body: `{"message":"Invalid api key"}`},
		{name: "server error", status: http.StatusInternalServerError, body: ``},
		{name: "not json", status: http.StatusOK, body: `<html></html>`},
		{name: "single coordinate", status: http.StatusOK, body: `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"37.61"}}}]}}}`},
		{name: "non numeric", status: http.StatusOK, body: `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"east north"}}}]}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, tt.body)
			if _, err := client.Geocode(context.Background(), "Moscow"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		pos     string
		want    places.Coordinate
		wantErr bool
	}{
		{pos: "37.617635 55.755814", want: places.Coordinate{Lat: 55.755814, Lon: 37.617635}},
		{pos: "  30.315 59.939 ", want: places.Coordinate{Lat: 59.939, Lon: 30.315}},
		{pos: "", wantErr: true},
		{pos: "1 2 3", wantErr: true},
		{pos: "37.6 95.0", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parsePos(tt.pos)
		if tt.wantErr {
			if !errors.Is(err, errMalformedPos) {
				t.Fatalf("%q: expected malformed error, got %v", tt.pos, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("%q: got %+v, %v; want %+v", tt.pos, got, err, tt.want)
		}
	}
}
