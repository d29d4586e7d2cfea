package service

import (
	"context"
	"sort"

	"foodcart_backend/internal/catalog/repository"
	"foodcart_backend/internal/catalog/transport"
	"foodcart_backend/platform/apperr"
	"foodcart_backend/platform/logger"
)

// Service provides read-side business logic for the food catalog.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// ListRestaurants returns all restaurants ordered by name.
func (s *Service) ListRestaurants(ctx context.Context) (transport.RestaurantListResponse, error) {
	restaurants, err := s.restaurantsByName(ctx)
	if err != nil {
		return transport.RestaurantListResponse{}, err
	}

	items := make([]transport.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		items = append(items, toRestaurantResponse(restaurant))
	}
	return transport.RestaurantListResponse{Items: items, Total: len(items)}, nil
}

// AvailabilityMatrix returns, for each product, one availability flag per
// restaurant. Restaurants are ordered by name; a restaurant without a menu
// item for the product reads as unavailable.
func (s *Service) AvailabilityMatrix(ctx context.Context) (transport.AvailabilityMatrixResponse, error) {
	restaurants, err := s.restaurantsByName(ctx)
	if err != nil {
		return transport.AvailabilityMatrixResponse{}, err
	}
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		s.log.DatabaseError("list products", err)
		return transport.AvailabilityMatrixResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load products", err)
	}
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		s.log.DatabaseError("list menu items", err)
		return transport.AvailabilityMatrixResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load menu items", err)
	}

	menu := make(map[int64]map[int64]bool, len(products))
	for _, item := range items {
		byRestaurant, ok := menu[item.ProductID]
		if !ok {
			byRestaurant = make(map[int64]bool)
			menu[item.ProductID] = byRestaurant
		}
		byRestaurant[item.Restaurant.ID] = item.Availability
	}

	resp := transport.AvailabilityMatrixResponse{
		Restaurants: make([]transport.RestaurantResponse, 0, len(restaurants)),
		Products:    make([]transport.ProductAvailability, 0, len(products)),
	}
	for _, restaurant := range restaurants {
		resp.Restaurants = append(resp.Restaurants, toRestaurantResponse(restaurant))
	}
	for _, product := range products {
		flags := make([]bool, len(restaurants))
		for i, restaurant := range restaurants {
			flags[i] = menu[product.ID][restaurant.ID]
		}
		resp.Products = append(resp.Products, transport.ProductAvailability{
			Product: transport.ProductRef{
				ID:       product.ID,
				Name:     product.Name,
				Category: product.Category,
				Price:    product.Price,
				Image:    product.Image,
			},
			Availability: flags,
		})
	}

	return resp, nil
}

func (s *Service) restaurantsByName(ctx context.Context) ([]repository.Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		s.log.DatabaseError("list restaurants", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load restaurants", err)
	}
	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].Name < restaurants[j].Name
	})
	return restaurants, nil
}

func toRestaurantResponse(restaurant repository.Restaurant) transport.RestaurantResponse {
	return transport.RestaurantResponse{
		ID:           restaurant.ID,
		Name:         restaurant.Name,
		Address:      restaurant.Address,
		ContactPhone: restaurant.ContactPhone,
	}
}
