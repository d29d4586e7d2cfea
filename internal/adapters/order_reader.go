package adapters

import (
	"context"
	"fmt"

	"foodcart_backend/internal/fulfillment/domain"
	"foodcart_backend/internal/fulfillment/ports"
	"foodcart_backend/internal/orders"
	ordersrepo "foodcart_backend/internal/orders/repository"
)

// OrderReader adapts the orders repository for the fulfillment domain.
// Status and payment method codes are replaced by their display labels.
type OrderReader struct {
	repo ordersrepo.Repository
}

// NewOrderReader creates a new order reader adapter.
func NewOrderReader(repo ordersrepo.Repository) *OrderReader {
	return &OrderReader{repo: repo}
}

var _ ports.OrderReader = (*OrderReader)(nil)

func (a *OrderReader) ListPendingOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := a.repo.ListPendingOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders adapter: list pending orders: %w", err)
	}

	result := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order := domain.Order{
			ID:            row.ID,
			Address:       row.Address,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Phone:         row.Phone,
			Status:        orders.StatusLabel(row.Status),
			PaymentMethod: orders.PaymentMethodLabel(row.PaymentMethod),
			Comment:       row.Comment,
			Lines:         make([]domain.OrderLine, 0, len(row.Entries)),
		}
		for _, entry := range row.Entries {
			order.Lines = append(order.Lines, domain.OrderLine{
				ProductID: domain.ProductID(entry.ProductID),
				Quantity:  entry.Quantity,
				Price:     entry.Price,
			})
		}
		result = append(result, order)
	}
	return result, nil
}
