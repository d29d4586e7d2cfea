// Package domain holds the pure fulfillment model: which restaurants can
// cook an order and how far each one is from the customer.
package domain

// ProductID identifies a product in the catalog.
type ProductID int64

// RestaurantID identifies a restaurant.
type RestaurantID int64

// Restaurant is a kitchen that can fulfill orders.
type Restaurant struct {
	ID      RestaurantID
	Name    string
	Address string
}

// AvailabilityRecord states whether a restaurant currently offers a product.
type AvailabilityRecord struct {
	ProductID  ProductID
	Restaurant Restaurant
	Available  bool
}

// OrderLine is one product entry of an order.
type OrderLine struct {
	ProductID ProductID
	Quantity  int
	Price     float64
}

// Order is a customer order awaiting a restaurant.
type Order struct {
	ID            int64
	Address       string
	Lines         []OrderLine
	FirstName     string
	LastName      string
	Phone         string
	Status        string
	PaymentMethod string
	Comment       string
}

// DistinctProducts returns each product in the order once, in first-seen order.
func (o Order) DistinctProducts() []ProductID {
	seen := make(map[ProductID]struct{}, len(o.Lines))
	products := make([]ProductID, 0, len(o.Lines))
	for _, line := range o.Lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		products = append(products, line.ProductID)
	}
	return products
}

// Total is the order price, the sum of line price times quantity.
func (o Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
