// Package service orchestrates order fulfillment: for each pending order it
// finds the restaurants able to cook it and ranks them by distance.
package service

import (
	"context"
	"fmt"

	"foodcart_backend/internal/fulfillment/domain"
	"foodcart_backend/internal/fulfillment/ports"
	"foodcart_backend/internal/places"
	"foodcart_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Status is the outcome of processing one order.
type Status string

const (
	StatusRanked               Status = "ranked"
	StatusNoSuitableRestaurant Status = "no_suitable_restaurant"
	StatusEmptyOrder           Status = "empty_order"
	StatusAddressUnresolved    Status = "address_unresolved"
)

// DefaultWorkers is the batch concurrency when none is configured.
const DefaultWorkers = 8

// Exclusion is a suitable restaurant left out of the ranking because its
// own address could not be geocoded.
type Exclusion struct {
	Restaurant domain.Restaurant
	Reason     places.Reason
}

// Result is the fulfillment view of one order.
type Result struct {
	Order  domain.Order
	Status Status
	// Reason is set when the order address could not be resolved.
	Reason places.Reason
	Ranked []domain.RankedRestaurant
	// Unranked lists the suitable restaurants when the order address is unresolved.
	Unranked []domain.Restaurant
	Excluded []Exclusion
}

// Service runs the fulfillment pipeline.
type Service struct {
	catalog  ports.CatalogReader
	orders   ports.OrderReader
	geocoder ports.Geocoder
	retry    ports.GeocodeRetryScheduler
	workers  int
	log      *logger.Logger
}

// New creates a fulfillment service.
func New(catalog ports.CatalogReader, orders ports.OrderReader, geocoder ports.Geocoder, workers int, log *logger.Logger) *Service {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Service{
		catalog:  catalog,
		orders:   orders,
		geocoder: geocoder,
		workers:  workers,
		log:      log,
	}
}

// SetRetryScheduler enables background retries for provider failures.
func (s *Service) SetRetryScheduler(retry ports.GeocodeRetryScheduler) {
	s.retry = retry
}

// LoadIndex builds the availability index from the current catalog.
func (s *Service) LoadIndex(ctx context.Context) (domain.Index, error) {
	records, err := s.catalog.ListAvailabilityRecords(ctx)
	if err != nil {
		return domain.Index{}, fmt.Errorf("list availability: %w", err)
	}
	return domain.BuildIndex(records), nil
}

// ListFulfillments processes every pending order against one snapshot of the catalog.
func (s *Service) ListFulfillments(ctx context.Context) ([]Result, error) {
	idx, err := s.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListPendingOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	return s.ProcessBatch(ctx, orders, idx), nil
}

// ProcessBatch processes orders independently and returns results in input order.
func (s *Service) ProcessBatch(ctx context.Context, orders []domain.Order, idx domain.Index) []Result {
	results := make([]Result, len(orders))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, order := range orders {
		g.Go(func() error {
			results[i] = s.Process(ctx, order, idx)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Process resolves and ranks the restaurants for a single order.
func (s *Service) Process(ctx context.Context, order domain.Order, idx domain.Index) Result {
	result := Result{Order: order}

	products := order.DistinctProducts()
	if len(products) == 0 {
		result.Status = StatusEmptyOrder
		return result
	}

	suitable := domain.SuitableRestaurants(idx, products)
	if len(suitable) == 0 {
		result.Status = StatusNoSuitableRestaurant
		return result
	}

	origin, err := s.geocoder.Resolve(ctx, order.Address)
	if err != nil {
		s.geocodeFailed(ctx, "order", order.Address, err)
		result.Status = StatusAddressUnresolved
		result.Reason = places.ReasonOf(err)
		result.Unranked = suitable
		return result
	}

	candidates := make([]domain.Candidate, 0, len(suitable))
	for _, restaurant := range suitable {
		coordinate, err := s.geocoder.Resolve(ctx, restaurant.Address)
		if err != nil {
			s.geocodeFailed(ctx, "restaurant", restaurant.Address, err)
			result.Excluded = append(result.Excluded, Exclusion{
				Restaurant: restaurant,
				Reason:     places.ReasonOf(err),
			})
			continue
		}
		candidates = append(candidates, domain.Candidate{Restaurant: restaurant, Coordinate: coordinate})
	}

	result.Status = StatusRanked
	result.Ranked = domain.Rank(origin, candidates)
	return result
}

func (s *Service) geocodeFailed(ctx context.Context, scope, address string, err error) {
	s.log.WithContext(ctx).GeocodeFailure(scope, address, string(places.ReasonOf(err)), err)

	if s.retry == nil || !places.IsProviderError(err) {
		return
	}
	if schedErr := s.retry.ScheduleGeocode(ctx, address); schedErr != nil {
		s.log.Error("failed to schedule geocode retry", "address", address, "error", schedErr)
	}
}
