package repository

import "context"

// Restaurant is a row of foodcartapp_restaurant.
type Restaurant struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Address      string `db:"address"`
	ContactPhone string `db:"contact_phone"`
}

// Product is a row of foodcartapp_product.
type Product struct {
	ID       int64   `db:"id"`
	Name     string  `db:"name"`
	Category string  `db:"category"`
	Price    float64 `db:"price"`
	Image    string  `db:"image"`
}

// MenuItem is a row of foodcartapp_restaurantmenuitem joined with its restaurant.
type MenuItem struct {
	ProductID    int64
	Restaurant   Restaurant
	Availability bool
}

// Repository defines read access to the food catalog.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
}
