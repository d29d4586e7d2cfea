package scheduler

import (
	"context"
	"fmt"
	"strings"

	"foodcart_backend/internal/places"
	"foodcart_backend/platform/config"
	"foodcart_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Resolver resolves an address through the place cache.
type Resolver interface {
	Resolve(ctx context.Context, address string) (places.Coordinate, error)
}

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, resolver Resolver, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.Handle(TaskGeocodeAddress, NewGeocodeHandler(resolver, log))

	return &Worker{server: server, mux: mux, log: log}, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

// GeocodeHandler processes places.geocode tasks by resolving the address
// through the cache, which stores it on success.
type GeocodeHandler struct {
	resolver Resolver
	log      *logger.Logger
}

func NewGeocodeHandler(resolver Resolver, log *logger.Logger) *GeocodeHandler {
	return &GeocodeHandler{resolver: resolver, log: log}
}

func (h *GeocodeHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseGeocodeAddressPayload(task)
	if err != nil {
		return fmt.Errorf("parse geocode payload: %v: %w", err, asynq.SkipRetry)
	}
	if strings.TrimSpace(payload.Address) == "" {
		return fmt.Errorf("empty address: %w", asynq.SkipRetry)
	}

	coordinate, err := h.resolver.Resolve(ctx, payload.Address)
	if err != nil {
		if places.IsNoMatch(err) {
			h.log.Info("geocode retry found no match", "address", payload.Address)
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return err
	}

	h.log.Info("geocode retry resolved address", "address", payload.Address, "coordinate", coordinate.String())
	return nil
}
