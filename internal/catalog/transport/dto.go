package transport

type RestaurantResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contactPhone"`
}

type RestaurantListResponse struct {
	Items []RestaurantResponse `json:"items"`
	Total int                  `json:"total"`
}

type ProductRef struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

// ProductAvailability holds one flag per restaurant, aligned with
// AvailabilityMatrixResponse.Restaurants.
type ProductAvailability struct {
	Product      ProductRef `json:"product"`
	Availability []bool     `json:"availability"`
}

type AvailabilityMatrixResponse struct {
	Restaurants []RestaurantResponse  `json:"restaurants"`
	Products    []ProductAvailability `json:"products"`
}
