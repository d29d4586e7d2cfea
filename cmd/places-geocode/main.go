package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"foodcart_backend/internal/adapters"
	catrepo "foodcart_backend/internal/catalog/repository"
	"foodcart_backend/internal/fulfillment/ports"
	"foodcart_backend/internal/maps"
	ordersrepo "foodcart_backend/internal/orders/repository"
	"foodcart_backend/internal/places"
	placesrepo "foodcart_backend/internal/places/repository"
	placesservice "foodcart_backend/internal/places/service"
	"foodcart_backend/platform/config"
	"foodcart_backend/platform/db"
	"foodcart_backend/platform/logger"

	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting places geocode backfill")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	store, closeStore, err := placesrepo.NewStore(ctx, pool, cfg, log)
	if err != nil {
		log.Error("failed to initialize place store", "error", err)
		panic("failed to initialize place store: " + err.Error())
	}
	defer closeStore()

	geocoder := placesservice.New(store, maps.NewClient(cfg, log), cfg.GetGeocoderTimeout(), log)

	addresses, err := collectAddresses(ctx, adapters.NewCatalogReader(catrepo.New(pool)), adapters.NewOrderReader(ordersrepo.New(pool)))
	if err != nil {
		log.Error("failed to list addresses", "error", err)
		return
	}

	limiter := rate.NewLimiter(rate.Every(cfg.GetGeocodeBackfillInterval()), 1)
	var resolved, cached, failed int
	for _, address := range addresses {
		if _, ok, err := store.Get(ctx, address); err != nil {
			log.Error("failed to read place store", "address", address, "error", err)
			return
		} else if ok {
			cached++
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			log.Info("backfill interrupted", "error", err)
			break
		}

		coordinate, err := geocoder.Resolve(ctx, address)
		if err != nil {
			failed++
			log.Warn("geocode failed", "address", address, "reason", string(places.ReasonOf(err)), "error", err)
			continue
		}

		resolved++
		log.Info("address geocoded", "address", address, "lat", coordinate.Lat, "lon", coordinate.Lon)
	}

	log.Info("places geocode backfill finished", "addresses", len(addresses), "resolved", resolved, "cached", cached, "failed", failed)
}

// collectAddresses returns every distinct restaurant and pending-order address,
// restaurants first.
func collectAddresses(ctx context.Context, catalog ports.CatalogReader, orders ports.OrderReader) ([]string, error) {
	restaurants, err := catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := orders.ListPendingOrders(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(restaurants)+len(pending))
	addresses := make([]string, 0, len(restaurants)+len(pending))
	add := func(address string) {
		if strings.TrimSpace(address) == "" {
			return
		}
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		addresses = append(addresses, address)
	}

	for _, restaurant := range restaurants {
		add(restaurant.Address)
	}
	for _, order := range pending {
		add(order.Address)
	}
	return addresses, nil
}
