// Package cache opens the shared Redis connection.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"crypto/tls"
	"fmt"

	"foodcart_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

// NewRedis parses REDIS_URL, applies REDIS_TLS_INSECURE and verifies the
// connection with a PING.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if cfg.GetRedisTLSInsecure() {
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{}
		}
		opt.TLSConfig.InsecureSkipVerify = true
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
