package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the catalog repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// ListRestaurants returns every restaurant ordered by name.
func (r *Repo) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	query := `
		SELECT id, name, address, contact_phone
		FROM foodcartapp_restaurant
		ORDER BY name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]Restaurant, 0)
	for rows.Next() {
		var restaurant Restaurant
		if err := rows.Scan(&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.ContactPhone); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restaurants: %w", err)
	}

	return restaurants, nil
}

// ListProducts returns every product with its category name.
func (r *Repo) ListProducts(ctx context.Context) ([]Product, error) {
	query := `
		SELECT p.id, p.name, COALESCE(c.name, ''), p.price, COALESCE(p.image, '')
		FROM foodcartapp_product p
		LEFT JOIN foodcartapp_productcategory c ON c.id = p.category_id
		ORDER BY p.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Category, &product.Price, &product.Image); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// ListMenuItems returns every menu item with its restaurant.
func (r *Repo) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	query := `
		SELECT m.product_id, m.availability, r.id, r.name, r.address, r.contact_phone
		FROM foodcartapp_restaurantmenuitem m
		JOIN foodcartapp_restaurant r ON r.id = m.restaurant_id
		ORDER BY m.product_id, r.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]MenuItem, 0)
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ProductID, &item.Availability,
			&item.Restaurant.ID, &item.Restaurant.Name, &item.Restaurant.Address, &item.Restaurant.ContactPhone,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}

	return items, nil
}
