// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// GeocoderConfig provides settings for the external geocoding provider.
type GeocoderConfig interface {
	GetGeocoderAPIKey() string
	GetGeocoderURL() string
	GetGeocoderTimeout() time.Duration
}

// RedisConfig provides settings for the Redis connection.
type RedisConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	IsRedisEnabled() bool
}

// SchedulerConfig provides settings for the asynq background queue.
type SchedulerConfig interface {
	RedisConfig
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetGeocodeRetryDelay() time.Duration
}

// FulfillmentConfig provides settings for batch order processing.
type FulfillmentConfig interface {
	GetFulfillmentWorkers() int
}

// PhoneConfig provides the default region for phone number parsing.
type PhoneConfig interface {
	GetPhoneRegion() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string
	HTTPAddr                string
	DatabaseURL             string
	MigrationsEnabled       bool
	JWTAccessSecret         string
	CORSAllowAll            bool
	CORSOrigins             []string
	CORSAllowCreds          bool
	GeocoderAPIKey          string
	GeocoderURL             string
	GeocoderTimeout         time.Duration
	RedisURL                string
	RedisTLSInsecure        bool
	AsynqQueueName          string
	AsynqConcurrency        int
	GeocodeRetryDelay       time.Duration
	GeocodeBackfillInterval time.Duration
	FulfillmentWorkers      int
	PhoneRegion             string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// GeocoderConfig implementation
func (c *Config) GetGeocoderAPIKey() string         { return c.GeocoderAPIKey }
func (c *Config) GetGeocoderURL() string            { return c.GeocoderURL }
func (c *Config) GetGeocoderTimeout() time.Duration { return c.GeocoderTimeout }

// RedisConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) IsRedisEnabled() bool      { return c.RedisURL != "" }

// SchedulerConfig implementation
func (c *Config) GetAsynqQueueName() string           { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int            { return c.AsynqConcurrency }
func (c *Config) GetGeocodeRetryDelay() time.Duration { return c.GeocodeRetryDelay }

// GetGeocodeBackfillInterval is the pause between provider calls in the backfill job.
func (c *Config) GetGeocodeBackfillInterval() time.Duration { return c.GeocodeBackfillInterval }

// FulfillmentConfig implementation
func (c *Config) GetFulfillmentWorkers() int { return c.FulfillmentWorkers }

// PhoneConfig implementation
func (c *Config) GetPhoneRegion() string { return c.PhoneRegion }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		MigrationsEnabled:       strings.EqualFold(getEnv("MIGRATIONS_ENABLED", "true"), "true"),
		JWTAccessSecret:         getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:            corsAllowAll,
		CORSOrigins:             corsOrigins,
		CORSAllowCreds:          strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		GeocoderAPIKey:          getEnv("YANDEX_GEOCODER_API_KEY", ""),
		GeocoderURL:             getEnv("GEOCODER_URL", "https://geocode-maps.yandex.ru/1.x"),
		GeocoderTimeout:         mustDuration(getEnv("GEOCODER_TIMEOUT", "5s")),
		RedisURL:                getEnv("REDIS_URL", ""),
		RedisTLSInsecure:        strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:          getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:        mustInt(getEnv("ASYNQ_CONCURRENCY", "5")),
		GeocodeRetryDelay:       mustDuration(getEnv("GEOCODE_RETRY_DELAY", "1m")),
		GeocodeBackfillInterval: mustDuration(getEnv("GEOCODE_BACKFILL_INTERVAL", "1s")),
		FulfillmentWorkers:      mustInt(getEnv("FULFILLMENT_WORKERS", "8")),
		PhoneRegion:             strings.ToUpper(getEnv("PHONE_REGION", "RU")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.GeocoderAPIKey == "" {
		return nil, fmt.Errorf("YANDEX_GEOCODER_API_KEY is required")
	}
	if cfg.GeocoderTimeout <= 0 {
		return nil, fmt.Errorf("GEOCODER_TIMEOUT must be a positive duration")
	}
	if cfg.FulfillmentWorkers < 1 {
		return nil, fmt.Errorf("FULFILLMENT_WORKERS must be at least 1")
	}
	if !cfg.CORSAllowAll && len(cfg.CORSOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ORIGINS must list at least one origin unless CORS_ALLOW_ALL is true")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
