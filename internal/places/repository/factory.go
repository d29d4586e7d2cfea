package repository

import (
	"context"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/cache"
	"foodcart_backend/platform/config"
	"foodcart_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewStore returns the Postgres place store, fronted by Redis when REDIS_URL
// is set. The returned close function releases the Redis connection.
func NewStore(ctx context.Context, pool *pgxpool.Pool, cfg config.RedisConfig, log *logger.Logger) (places.Store, func(), error) {
	durable := New(pool)
	if !cfg.IsRedisEnabled() {
		return durable, func() {}, nil
	}

	client, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("place store using redis hot tier")

	store := NewTieredStore(NewRedisStore(client, DefaultRedisKey), durable, log)
	return store, func() { _ = client.Close() }, nil
}
