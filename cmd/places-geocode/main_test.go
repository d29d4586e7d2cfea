package main

import (
	"context"
	"reflect"
	"testing"

	"foodcart_backend/internal/fulfillment/domain"
)

type stubCatalog struct{}

func (stubCatalog) ListAvailabilityRecords(context.Context) ([]domain.AvailabilityRecord, error) {
	return nil, nil
}

func (stubCatalog) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	return []domain.Restaurant{
		{ID: 1, Address: "Tverskaya 1"},
		{ID: 2, Address: ""},
		{ID: 3, Address: "Arbat 10"},
	}, nil
}

type stubOrders struct{}

func (stubOrders) ListPendingOrders(context.Context) ([]domain.Order, error) {
	return []domain.Order{
		{ID: 1, Address: "Arbat 10"},
		{ID: 2, Address: "Lenina 5"},
		{ID: 3, Address: "lenina 5"},
	}, nil
}

func TestCollectAddresses(t *testing.T) {
	got, err := collectAddresses(context.Background(), stubCatalog{}, stubOrders{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := []string{"Tverskaya 1", "Arbat 10", "Lenina 5", "lenina 5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
