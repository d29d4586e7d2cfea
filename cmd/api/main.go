package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcart_backend/internal/adapters"
	"foodcart_backend/internal/catalog"
	"foodcart_backend/internal/fulfillment"
	apphttp "foodcart_backend/internal/http"
	"foodcart_backend/internal/http/router"
	"foodcart_backend/internal/maps"
	ordersrepo "foodcart_backend/internal/orders/repository"
	placesrepo "foodcart_backend/internal/places/repository"
	placesservice "foodcart_backend/internal/places/service"
	"foodcart_backend/internal/scheduler"
	"foodcart_backend/platform/config"
	"foodcart_backend/platform/db"
	"foodcart_backend/platform/logger"
	"foodcart_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	if cfg.MigrationsEnabled {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, pool, log)
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")
	}

	placeStore, closeStore, err := placesrepo.NewStore(ctx, pool, cfg, log)
	if err != nil {
		log.Error("failed to initialize place store", "error", err)
		panic("failed to initialize place store: " + err.Error())
	}
	defer closeStore()

	geocoder := placesservice.New(placeStore, maps.NewClient(cfg, log), cfg.GetGeocoderTimeout(), log)

	retryScheduler, closeScheduler := initGeocodeRetryScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	catalogModule := catalog.NewModule(pool, log)
	mapsModule := maps.NewModule(geocoder, val)

	catalogReader := adapters.NewCatalogReader(catalogModule.Repository())
	orderReader := adapters.NewOrderReader(ordersrepo.New(pool))
	fulfillmentModule := fulfillment.NewModule(catalogReader, orderReader, geocoder, cfg, log)
	if retryScheduler != nil {
		fulfillmentModule.SetRetryScheduler(retryScheduler)
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			catalogModule,
			mapsModule,
			fulfillmentModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initGeocodeRetryScheduler(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; geocode retries disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize geocode retry scheduler", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
