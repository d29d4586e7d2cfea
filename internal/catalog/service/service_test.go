package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"foodcart_backend/internal/catalog/repository"
	"foodcart_backend/platform/apperr"
	"foodcart_backend/platform/logger"
)

type fakeRepo struct {
	restaurants []repository.Restaurant
	products    []repository.Product
	items       []repository.MenuItem
	err         error
}

func (f fakeRepo) ListRestaurants(context.Context) ([]repository.Restaurant, error) {
	return append([]repository.Restaurant(nil), f.restaurants...), f.err
}

func (f fakeRepo) ListProducts(context.Context) ([]repository.Product, error) {
	return f.products, nil
}

func (f fakeRepo) ListMenuItems(context.Context) ([]repository.MenuItem, error) {
	return f.items, nil
}

func TestAvailabilityMatrix(t *testing.T) {
	zenith := repository.Restaurant{ID: 1, Name: "Zenith"}
	alpha := repository.Restaurant{ID: 2, Name: "Alpha"}
	mid := repository.Restaurant{ID: 3, Name: "Mid"}

	repo := fakeRepo{
		restaurants: []repository.Restaurant{zenith, alpha, mid},
		products: []repository.Product{
			{ID: 10, Name: "Burger"},
			{ID: 20, Name: "Fries"},
		},
		items: []repository.MenuItem{
			{ProductID: 10, Restaurant: zenith, Availability: true},
			{ProductID: 10, Restaurant: alpha, Availability: false},
			{ProductID: 20, Restaurant: mid, Availability: true},
		},
	}
	svc := New(repo, logger.Discard())

	resp, err := svc.AvailabilityMatrix(context.Background())
	if err != nil {
		t.Fatalf("matrix: %v", err)
	}

	names := make([]string, 0, len(resp.Restaurants))
	for _, r := range resp.Restaurants {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(names, []string{"Alpha", "Mid", "Zenith"}) {
		t.Fatalf("restaurants must be ordered by name, got %v", names)
	}

	want := map[int64][]bool{
		10: {false, false, true},
		20: {false, true, false},
	}
	for _, p := range resp.Products {
		if !reflect.DeepEqual(p.Availability, want[p.Product.ID]) {
			t.Fatalf("product %d: got %v, want %v", p.Product.ID, p.Availability, want[p.Product.ID])
		}
	}
}

func TestListRestaurantsWrapsErrors(t *testing.T) {
	svc := New(fakeRepo{err: errors.New("db down")}, logger.Discard())
	_, err := svc.ListRestaurants(context.Background())
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
