package domain

import (
	"math"
	"sort"

	"foodcart_backend/internal/places"
)

// earthRadiusKm is the mean Earth radius.
const earthRadiusKm = 6371.0088

// Candidate is a suitable restaurant with its resolved location.
type Candidate struct {
	Restaurant Restaurant
	Coordinate places.Coordinate
}

// RankedRestaurant is a restaurant with its distance to the order, in km
// rounded to one decimal.
type RankedRestaurant struct {
	Restaurant Restaurant
	DistanceKm float64
}

// Rank orders candidates by rounded distance from origin, closest first.
// Equal distances are ordered by restaurant ID.
func Rank(origin places.Coordinate, candidates []Candidate) []RankedRestaurant {
	ranked := make([]RankedRestaurant, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, RankedRestaurant{
			Restaurant: candidate.Restaurant,
			DistanceKm: roundTenth(DistanceKm(origin, candidate.Coordinate)),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return ranked[i].Restaurant.ID < ranked[j].Restaurant.ID
	})
	return ranked
}

// DistanceKm is the haversine great-circle distance between a and b.
func DistanceKm(a, b places.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	deltaLat := toRadians(b.Lat - a.Lat)
	deltaLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func roundTenth(km float64) float64 {
	return math.Round(km*10) / 10
}
