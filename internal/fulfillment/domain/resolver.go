package domain

// SuitableRestaurants returns the restaurants offering every product in
// products, sorted by ID. An empty product list yields no restaurants.
func SuitableRestaurants(idx Index, products []ProductID) []Restaurant {
	if len(products) == 0 {
		return []Restaurant{}
	}

	candidates := make(map[RestaurantID]Restaurant)
	for id, restaurant := range idx.offers[products[0]] {
		candidates[id] = restaurant
	}

	for _, product := range products[1:] {
		if len(candidates) == 0 {
			break
		}
		offered := idx.offers[product]
		for id := range candidates {
			if _, ok := offered[id]; !ok {
				delete(candidates, id)
			}
		}
	}

	suitable := make([]Restaurant, 0, len(candidates))
	for _, restaurant := range candidates {
		suitable = append(suitable, restaurant)
	}
	sortByID(suitable)
	return suitable
}
