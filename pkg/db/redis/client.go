package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const errFailedConnect = "failed to connect to redis"

// Client owns a *redis.Client.
type Client struct {
	client *redis.Client
}

// NewClient dials and pings the server, bounded by cfg.Timeout.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	pingCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", errFailedConnect, err)
	}

	return &Client{client: rdb}, nil
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	return c.client.Close()
}

// RawClient exposes the go-redis client for list and pipeline commands.
func (c *Client) RawClient() *redis.Client {
	return c.client
}
