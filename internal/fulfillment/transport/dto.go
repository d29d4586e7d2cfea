package transport

import (
	"foodcart_backend/internal/fulfillment/domain"
	"foodcart_backend/internal/fulfillment/service"
	"foodcart_backend/platform/phone"
	"foodcart_backend/platform/sanitize"
)

type RestaurantDistance struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distanceKm"`
}

type RestaurantRef struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type ExcludedRestaurant struct {
	RestaurantRef
	Reason string `json:"reason"`
}

type OrderResponse struct {
	ID            int64                `json:"id"`
	Price         float64              `json:"price"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Phone         string               `json:"phoneNumber"`
	Address       string               `json:"address"`
	Status        string               `json:"status"`
	PaymentMethod string               `json:"paymentMethod"`
	Comment       string               `json:"comment"`
	Fulfillment   string               `json:"fulfillment"`
	Reason        string               `json:"reason,omitempty"`
	Restaurants   []RestaurantDistance `json:"restaurants"`
	Unranked      []RestaurantRef      `json:"unranked,omitempty"`
	Excluded      []ExcludedRestaurant `json:"excluded,omitempty"`
}

type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// ToOrderResponse renders a fulfillment result; phone numbers are shown in
// E.164 using region for numbers without a country prefix.
func ToOrderResponse(result service.Result, region string) OrderResponse {
	order := result.Order
	resp := OrderResponse{
		ID:            order.ID,
		Price:         order.Total(),
		FirstName:     order.FirstName,
		LastName:      order.LastName,
		Phone:         phone.NormalizeE164(order.Phone, region),
		Address:       order.Address,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Comment:       sanitize.Comment(order.Comment),
		Fulfillment:   string(result.Status),
		Reason:        string(result.Reason),
		Restaurants:   make([]RestaurantDistance, 0, len(result.Ranked)),
	}

	for _, ranked := range result.Ranked {
		resp.Restaurants = append(resp.Restaurants, RestaurantDistance{
			ID:         int64(ranked.Restaurant.ID),
			Name:       ranked.Restaurant.Name,
			DistanceKm: ranked.DistanceKm,
		})
	}
	for _, restaurant := range result.Unranked {
		resp.Unranked = append(resp.Unranked, toRef(restaurant))
	}
	for _, excluded := range result.Excluded {
		resp.Excluded = append(resp.Excluded, ExcludedRestaurant{
			RestaurantRef: toRef(excluded.Restaurant),
			Reason:        string(excluded.Reason),
		})
	}

	return resp
}

func toRef(restaurant domain.Restaurant) RestaurantRef {
	return RestaurantRef{ID: int64(restaurant.ID), Name: restaurant.Name, Address: restaurant.Address}
}
