// Package repository reads customer orders from the storefront tables.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatusCompleted marks an order that no longer needs a restaurant.
const StatusCompleted = "completed"

// Order is a row of foodcartapp_foodcart with its entries.
type Order struct {
	ID            int64
	FirstName     string
	LastName      string
	Phone         string
	Address       string
	Status        string
	PaymentMethod string
	Comment       string
	Entries       []Entry
}

// Entry is a row of foodcartapp_cartentry.
type Entry struct {
	ProductID int64
	Quantity  int
	Price     float64
}

// Repository defines read access to orders.
type Repository interface {
	ListPendingOrders(ctx context.Context) ([]Order, error)
}

// Repo implements the orders repository.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new orders repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var _ Repository = (*Repo)(nil)

// ListPendingOrders returns every order that is not completed, oldest first,
// with entries attached.
func (r *Repo) ListPendingOrders(ctx context.Context) ([]Order, error) {
	query := `
		SELECT id, firstname, lastname, phonenumber, address, status,
			payment_method, COALESCE(comment, '')
		FROM foodcartapp_foodcart
		WHERE status <> $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	byID := make(map[int64]int)
	ids := make([]int64, 0)
	for rows.Next() {
		var order Order
		if err := rows.Scan(
			&order.ID, &order.FirstName, &order.LastName, &order.Phone, &order.Address,
			&order.Status, &order.PaymentMethod, &order.Comment,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		byID[order.ID] = len(orders)
		ids = append(ids, order.ID)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	entriesQuery := `
		SELECT cart_id, product_id, quantity, price
		FROM foodcartapp_cartentry
		WHERE cart_id = ANY($1)
		ORDER BY cart_id, id`

	entryRows, err := r.pool.Query(ctx, entriesQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("list order entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var cartID int64
		var entry Entry
		if err := entryRows.Scan(&cartID, &entry.ProductID, &entry.Quantity, &entry.Price); err != nil {
			return nil, fmt.Errorf("scan order entry: %w", err)
		}
		if i, ok := byID[cartID]; ok {
			orders[i].Entries = append(orders[i].Entries, entry)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order entries: %w", err)
	}

	return orders, nil
}
