package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ""), mr
}

func TestRedisStoreRoundTripAndUpsert(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	if _, ok, err := store.Get(ctx, "Moscow"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	first := places.Place{Address: "Moscow", Coordinate: places.Coordinate{Lat: 55.75, Lon: 37.61}, ResolvedAt: time.Unix(100, 0).UTC()}
	second := places.Place{Address: "Moscow", Coordinate: places.Coordinate{Lat: 55.76, Lon: 37.62}, ResolvedAt: time.Unix(200, 0).UTC()}
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "Moscow")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Coordinate != second.Coordinate || !got.ResolvedAt.Equal(second.ResolvedAt) {
		t.Fatalf("expected latest write, got %+v", got)
	}

	fields, err := mr.HKeys(DefaultRedisKey)
	if err != nil {
		t.Fatalf("hkeys: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("expected one entry per address, got %v", fields)
	}
}

func TestRedisStoreKeysByExactAddress(t *testing.T) {
	ctx := context.Background()
	store, _ := newRedisStore(t)

	if err := store.Put(ctx, places.Place{Address: "Moscow"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	for _, address := range []string{"moscow", "Moscow ", " Moscow"} {
		if _, ok, err := store.Get(ctx, address); err != nil || ok {
			t.Fatalf("%q: expected miss, got ok=%v err=%v", address, ok, err)
		}
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (places.Place, bool, error) {
	return places.Place{}, false, errors.New("down")
}

func (failingStore) Put(context.Context, places.Place) error {
	return errors.New("down")
}

func TestTieredStoreBackfillsHotTier(t *testing.T) {
	ctx := context.Background()
	hot := NewMemoryStore()
	durable := NewMemoryStore()
	store := NewTieredStore(hot, durable, logger.Discard())

	place := places.Place{Address: "Kazan", Coordinate: places.Coordinate{Lat: 55.79, Lon: 49.12}}
	if err := durable.Put(ctx, place); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, ok, err := store.Get(ctx, "Kazan")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.Coordinate != place.Coordinate {
		t.Fatalf("unexpected place %+v", got)
	}
	if hot.Len() != 1 {
		t.Fatalf("expected hot tier backfill, got %d entries", hot.Len())
	}
}

func TestTieredStoreToleratesHotTierFailure(t *testing.T) {
	ctx := context.Background()
	durable := NewMemoryStore()
	store := NewTieredStore(failingStore{}, durable, logger.Discard())

	place := places.Place{Address: "Omsk"}
	if err := store.Put(ctx, place); err != nil {
		t.Fatalf("put should succeed when only the hot tier fails: %v", err)
	}
	if _, ok, err := store.Get(ctx, "Omsk"); err != nil || !ok {
		t.Fatalf("expected durable hit, got ok=%v err=%v", ok, err)
	}
}

func TestTieredStoreFailsWhenDurableTierFails(t *testing.T) {
	store := NewTieredStore(NewMemoryStore(), failingStore{}, logger.Discard())
	if err := store.Put(context.Background(), places.Place{Address: "Omsk"}); err == nil {
		t.Fatal("expected durable write error")
	}
}
