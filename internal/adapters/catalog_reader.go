package adapters

import (
	"context"
	"fmt"

	catrepo "foodcart_backend/internal/catalog/repository"
	"foodcart_backend/internal/fulfillment/domain"
	"foodcart_backend/internal/fulfillment/ports"
)

// CatalogReader adapts the catalog repository for the fulfillment domain.
type CatalogReader struct {
	repo catrepo.Repository
}

// NewCatalogReader creates a new catalog reader adapter.
func NewCatalogReader(repo catrepo.Repository) *CatalogReader {
	return &CatalogReader{repo: repo}
}

var _ ports.CatalogReader = (*CatalogReader)(nil)

// ListAvailabilityRecords maps menu items to availability records.
func (a *CatalogReader) ListAvailabilityRecords(ctx context.Context) ([]domain.AvailabilityRecord, error) {
	items, err := a.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog adapter: list menu items: %w", err)
	}

	records := make([]domain.AvailabilityRecord, 0, len(items))
	for _, item := range items {
		records = append(records, domain.AvailabilityRecord{
			ProductID:  domain.ProductID(item.ProductID),
			Restaurant: toDomainRestaurant(item.Restaurant),
			Available:  item.Availability,
		})
	}
	return records, nil
}

// ListRestaurants returns every restaurant as a domain value.
func (a *CatalogReader) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := a.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog adapter: list restaurants: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, toDomainRestaurant(row))
	}
	return restaurants, nil
}

func toDomainRestaurant(r catrepo.Restaurant) domain.Restaurant {
	return domain.Restaurant{
		ID:      domain.RestaurantID(r.ID),
		Name:    r.Name,
		Address: r.Address,
	}
}
