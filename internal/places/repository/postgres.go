package repository

import (
	"context"
	"errors"
	"fmt"

	"foodcart_backend/internal/places"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectPlaceSQL = `
		SELECT address, lat, lon, resolved_at
		FROM places
		WHERE address = $1`

	// address is the primary key, so a repeated Put overwrites the row.
	upsertPlaceSQL = `
		INSERT INTO places (address, lat, lon, resolved_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (address) DO UPDATE
		SET lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			resolved_at = EXCLUDED.resolved_at`
)

// Repo stores resolved places in Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new places repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements places.Store.
var _ places.Store = (*Repo)(nil)

// Get loads the place stored for the exact address string.
func (r *Repo) Get(ctx context.Context, address string) (places.Place, bool, error) {
	var place places.Place
	if err := r.pool.QueryRow(ctx, selectPlaceSQL, address).Scan(
		&place.Address, &place.Coordinate.Lat, &place.Coordinate.Lon, &place.ResolvedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return places.Place{}, false, nil
		}
		return places.Place{}, false, fmt.Errorf("get place: %w", err)
	}

	return place, true, nil
}

// Put upserts a place, keeping a single row per address.
func (r *Repo) Put(ctx context.Context, place places.Place) error {
	if _, err := r.pool.Exec(ctx, upsertPlaceSQL,
		place.Address, place.Coordinate.Lat, place.Coordinate.Lon, place.ResolvedAt,
	); err != nil {
		return fmt.Errorf("put place: %w", err)
	}
	return nil
}
