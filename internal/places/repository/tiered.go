package repository

import (
	"context"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/logger"
)

// TieredStore reads through a hot store (Redis) to the durable store
// (Postgres) and writes through both. The durable store is authoritative:
// hot-tier errors are logged and never fail a call.
type TieredStore struct {
	hot     places.Store
	durable places.Store
	log     *logger.Logger
}

// NewTieredStore combines hot and durable stores.
func NewTieredStore(hot, durable places.Store, log *logger.Logger) *TieredStore {
	return &TieredStore{hot: hot, durable: durable, log: log}
}

var _ places.Store = (*TieredStore)(nil)

func (s *TieredStore) Get(ctx context.Context, address string) (places.Place, bool, error) {
	place, ok, err := s.hot.Get(ctx, address)
	if err != nil {
		s.log.Warn("hot place store read failed", "address", address, "error", err)
	} else if ok {
		return place, true, nil
	}

	place, ok, err = s.durable.Get(ctx, address)
	if err != nil || !ok {
		return place, ok, err
	}

	if err := s.hot.Put(ctx, place); err != nil {
		s.log.Warn("hot place store backfill failed", "address", address, "error", err)
	}
	return place, true, nil
}

func (s *TieredStore) Put(ctx context.Context, place places.Place) error {
	if err := s.durable.Put(ctx, place); err != nil {
		return err
	}
	if err := s.hot.Put(ctx, place); err != nil {
		s.log.Warn("hot place store write failed", "address", place.Address, "error", err)
	}
	return nil
}
