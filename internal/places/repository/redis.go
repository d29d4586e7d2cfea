package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"foodcart_backend/internal/places"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding one field per address.
const DefaultRedisKey = "places:coordinates"

// RedisStore keeps places in a single Redis hash. HSET replaces a field
// atomically, so concurrent writers for one address never tear an entry.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store on the given hash key (DefaultRedisKey if empty).
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

var _ places.Store = (*RedisStore)(nil)

// Get loads the place for the exact address string.
func (s *RedisStore) Get(ctx context.Context, address string) (places.Place, bool, error) {
	value, err := s.client.HGet(ctx, s.key, address).Result()
	if errors.Is(err, redis.Nil) {
		return places.Place{}, false, nil
	}
	if err != nil {
		return places.Place{}, false, fmt.Errorf("redis get place: %w", err)
	}

	var place places.Place
	if err := json.Unmarshal([]byte(value), &place); err != nil {
		return places.Place{}, false, fmt.Errorf("decode place: %w", err)
	}
	return place, true, nil
}

// Put overwrites the entry for place.Address.
func (s *RedisStore) Put(ctx context.Context, place places.Place) error {
	payload, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("encode place: %w", err)
	}
	if err := s.client.HSet(ctx, s.key, place.Address, payload).Err(); err != nil {
		return fmt.Errorf("redis put place: %w", err)
	}
	return nil
}
