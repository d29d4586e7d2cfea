package domain

import "sort"

// Index maps each product to the restaurants currently offering it.
// It is immutable once built and safe to share between goroutines.
type Index struct {
	offers map[ProductID]map[RestaurantID]Restaurant
}

// BuildIndex folds availability records into an Index. A true record adds the
// restaurant to the product's set; a false record only registers the product.
func BuildIndex(records []AvailabilityRecord) Index {
	offers := make(map[ProductID]map[RestaurantID]Restaurant)
	for _, record := range records {
		set, ok := offers[record.ProductID]
		if !ok {
			set = make(map[RestaurantID]Restaurant)
			offers[record.ProductID] = set
		}
		if record.Available {
			set[record.Restaurant.ID] = record.Restaurant
		}
	}
	return Index{offers: offers}
}

// Restaurants returns the restaurants offering product, sorted by ID.
// Unknown products yield an empty slice.
func (idx Index) Restaurants(product ProductID) []Restaurant {
	set := idx.offers[product]
	restaurants := make([]Restaurant, 0, len(set))
	for _, restaurant := range set {
		restaurants = append(restaurants, restaurant)
	}
	sortByID(restaurants)
	return restaurants
}

// Offers reports whether restaurant offers product.
func (idx Index) Offers(product ProductID, restaurant RestaurantID) bool {
	_, ok := idx.offers[product][restaurant]
	return ok
}

// Products returns the number of products known to the index.
func (idx Index) Products() int {
	return len(idx.offers)
}

func sortByID(restaurants []Restaurant) {
	sort.Slice(restaurants, func(i, j int) bool {
		return restaurants[i].ID < restaurants[j].ID
	})
}
