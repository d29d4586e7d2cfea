package scheduler

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"foodcart_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

const defaultRetryDelay = time.Minute

type Client struct {
	client     *asynq.Client
	queue      string
	retryDelay time.Duration
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	retryDelay := cfg.GetGeocodeRetryDelay()
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	return &Client{
		client:     asynq.NewClient(opt),
		queue:      queue,
		retryDelay: retryDelay,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ScheduleGeocode enqueues a delayed geocode for address. A retry already
// pending for the same address is left in place.
func (c *Client) ScheduleGeocode(ctx context.Context, address string) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewGeocodeAddressTask(GeocodeAddressPayload{Address: address})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.TaskID(geocodeTaskID(address)),
		asynq.ProcessIn(c.retryDelay),
		asynq.Queue(c.queue),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
