// Package maps talks to the Yandex geocoder and exposes an address lookup endpoint.
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/config"
	"foodcart_backend/platform/logger"
)

// DefaultBaseURL is the public Yandex geocoder endpoint.
const DefaultBaseURL = "https://geocode-maps.yandex.ru/1.x"

var errMalformedPos = errors.New("malformed point")

// Client queries the Yandex geocoder. Call deadlines come from the caller's
// context; the HTTP client timeout is a backstop.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logger.Logger
}

// NewClient builds a client from geocoder configuration.
func NewClient(cfg config.GeocoderConfig, log *logger.Logger) *Client {
	baseURL := cfg.GetGeocoderURL()
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.GetGeocoderAPIKey(),
		client:  &http.Client{Timeout: 2 * cfg.GetGeocoderTimeout()},
		log:     log,
	}
}

var _ places.Provider = (*Client)(nil)

// Geocode returns the provider's candidates for address, most relevant first.
// An empty slice with a nil error means the geocoder found nothing.
func (c *Client) Geocode(ctx context.Context, address string) ([]places.Candidate, error) {
	params := url.Values{}
	params.Add("geocode", address)
	params.Add("apikey", c.apiKey)
	params.Add("format", "json")

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("yandex geocoder request failed", "error", err)
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Error("yandex geocoder upstream error", "status", resp.StatusCode)
		return nil, fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("failed to decode yandex geocoder payload", "error", err)
		return nil, err
	}

	members := payload.Response.GeoObjectCollection.FeatureMember
	candidates := make([]places.Candidate, 0, len(members))
	for i, member := range members {
		coordinate, err := parsePos(member.GeoObject.Point.Pos)
		if err != nil {
			// Only the top match is ever used; a broken tail entry is dropped.
			if i == 0 {
				return nil, fmt.Errorf("candidate %q: %w", member.GeoObject.Name, err)
			}
			c.log.Warn("skipping malformed yandex candidate", "name", member.GeoObject.Name, "error", err)
			continue
		}
		candidates = append(candidates, places.Candidate{
			Coordinate: coordinate,
			Label:      member.GeoObject.Name,
		})
	}

	return candidates, nil
}

// parsePos reads a Yandex "lon lat" pair into a Coordinate.
func parsePos(pos string) (places.Coordinate, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return places.Coordinate{}, fmt.Errorf("%w: %q", errMalformedPos, pos)
	}
	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return places.Coordinate{}, fmt.Errorf("%w: %q", errMalformedPos, pos)
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return places.Coordinate{}, fmt.Errorf("%w: %q", errMalformedPos, pos)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return places.Coordinate{}, fmt.Errorf("%w: out of range %q", errMalformedPos, pos)
	}
	return places.Coordinate{Lat: lat, Lon: lon}, nil
}
