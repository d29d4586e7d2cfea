// Package places resolves free-text addresses to coordinates.
//
// Resolved coordinates are stored per exact address string, case and
// whitespace included, and never evicted by this service.
package places

import (
	"context"
	"fmt"
	"time"
)

// Coordinate is a position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// Place is a stored address resolution.
type Place struct {
	Address    string     `json:"address"`
	Coordinate Coordinate `json:"coordinate"`
	ResolvedAt time.Time  `json:"resolvedAt"`
}

// Candidate is one provider match, most relevant first.
type Candidate struct {
	Coordinate Coordinate
	Label      string
}

// Store persists address resolutions. Put is an upsert: one entry per address.
type Store interface {
	Get(ctx context.Context, address string) (Place, bool, error)
	Put(ctx context.Context, place Place) error
}

// Provider is an external geocoding service.
type Provider interface {
	Geocode(ctx context.Context, address string) ([]Candidate, error)
}
