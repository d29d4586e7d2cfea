// Package service provides the cache-through geocoding used by fulfillment.
package service

import (
	"context"
	"fmt"
	"time"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/logger"

	"golang.org/x/sync/singleflight"
)

// DefaultTimeout bounds one provider call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Cache resolves addresses through a Store, asking the Provider only on a miss.
// Concurrent misses for the same address share one provider call.
type Cache struct {
	store    places.Store
	provider places.Provider
	timeout  time.Duration
	now      func() time.Time
	log      *logger.Logger
	group    singleflight.Group
}

// New wires a cache over store and provider.
func New(store places.Store, provider places.Provider, timeout time.Duration, log *logger.Logger) *Cache {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Cache{
		store:    store,
		provider: provider,
		timeout:  timeout,
		now:      time.Now,
		log:      log,
	}
}

// Resolve returns the coordinate for address. Failures from the provider are
// *places.Failure values; store failures are returned as plain wrapped errors.
func (c *Cache) Resolve(ctx context.Context, address string) (places.Coordinate, error) {
	place, ok, err := c.store.Get(ctx, address)
	if err != nil {
		return places.Coordinate{}, fmt.Errorf("load cached place: %w", err)
	}
	if ok {
		return place.Coordinate, nil
	}

	// The shared call outlives any single caller so a cancelled request
	// does not fail the others waiting on it.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(address, func() (interface{}, error) {
		return c.fetch(shared, address)
	})

	select {
	case <-ctx.Done():
		return places.Coordinate{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return places.Coordinate{}, res.Err
		}
		return res.Val.(places.Coordinate), nil
	}
}

func (c *Cache) fetch(ctx context.Context, address string) (places.Coordinate, error) {
	// A previous flight may have stored the address after our miss.
	if place, ok, err := c.store.Get(ctx, address); err == nil && ok {
		return place.Coordinate, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	candidates, err := c.provider.Geocode(callCtx, address)
	if err != nil {
		failure := places.ProviderError(address, err)
		c.log.GeocodeFailure("cache", address, string(failure.Reason), err)
		return places.Coordinate{}, failure
	}
	if len(candidates) == 0 {
		failure := places.NoMatch(address)
		c.log.GeocodeFailure("cache", address, string(failure.Reason), failure)
		return places.Coordinate{}, failure
	}

	place := places.Place{
		Address:    address,
		Coordinate: candidates[0].Coordinate,
		ResolvedAt: c.now().UTC(),
	}
	if err := c.store.Put(ctx, place); err != nil {
		c.log.DatabaseError("store place", err)
		return places.Coordinate{}, fmt.Errorf("store place: %w", err)
	}

	return place.Coordinate, nil
}
