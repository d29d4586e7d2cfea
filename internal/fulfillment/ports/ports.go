// Package ports defines the interfaces the fulfillment domain requires from
// external systems. Adapters in internal/adapters translate catalog, orders
// and places into these shapes, so fulfillment never imports those modules.
package ports

import (
	"context"

	"foodcart_backend/internal/fulfillment/domain"
	"foodcart_backend/internal/places"
)

// CatalogReader supplies menu availability.
type CatalogReader interface {
	// ListAvailabilityRecords returns one record per (product, restaurant) menu item.
	ListAvailabilityRecords(ctx context.Context) ([]domain.AvailabilityRecord, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

// OrderReader supplies the orders awaiting a restaurant.
type OrderReader interface {
	ListPendingOrders(ctx context.Context) ([]domain.Order, error)
}

// Geocoder resolves addresses through the shared place cache.
// Failures are *places.Failure values; other errors come from the store.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (places.Coordinate, error)
}

// GeocodeRetryScheduler queues a background geocode for an address whose
// provider call failed. Scheduling the same address twice is not an error.
type GeocodeRetryScheduler interface {
	ScheduleGeocode(ctx context.Context, address string) error
}
