// Package redislist stores record lines in a Redis list, one element per line.
package redislist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"moviecards/internal/rental/ports/repositories"
	"moviecards/pkg/logger"
	"moviecards/pkg/retry"
)

const (
	methodReadLines  = "List.ReadLines"
	methodWriteLines = "List.WriteLines"
)

const (
	msgKeyMissing = "key does not exist"
	msgListRead   = "list read"
	msgListStored = "list stored"
)

const (
	errCtxExists = "failed to check key"
	errCtxRange  = "failed to read list"
	errCtxStore  = "failed to store list"
)

// List is a LineStorage over a single Redis key.
type List struct {
	client redis.Cmdable
	key    string
	retry  retry.Config
}

var _ repositories.LineStorage = (*List)(nil)

// Option customises a List.
type Option func(*List)

// WithRetry overrides the retry policy for transient connection errors.
func WithRetry(cfg retry.Config) Option {
	return func(l *List) {
		cfg.ShouldRetry = isTransient
		l.retry = cfg
	}
}

// New binds storage to prefix+name.
func New(client redis.Cmdable, prefix, name string, opts ...Option) *List {
	cfg := retry.DefaultConfig()
	cfg.ShouldRetry = isTransient

	l := &List{client: client, key: prefix + name, retry: cfg}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// isTransient rejects replies the server sent, such as WRONGTYPE, and
// cancellations. Everything else is treated as a connection problem.
func isTransient(err error) bool {
	var reply redis.Error
	if errors.As(err, &reply) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (l *List) Location() string {
	return "redis://" + l.key
}

// ReadLines returns the list elements in order. A missing key yields nil, nil.
func (l *List) ReadLines(ctx context.Context) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodReadLines), zap.String("key", l.key))

	var n int64
	err := retry.Do(ctx, methodReadLines, l.retry, func(ctx context.Context) error {
		var err error
		n, err = l.client.Exists(ctx, l.key).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxExists, err)
	}
	if n == 0 {
		log.Debug(ctx, msgKeyMissing)
		return nil, nil
	}

	var lines []string
	err = retry.Do(ctx, methodReadLines, l.retry, func(ctx context.Context) error {
		var err error
		lines, err = l.client.LRange(ctx, l.key, 0, -1).Result()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxRange, err)
	}

	log.Debug(ctx, msgListRead, zap.Int("lines", len(lines)))
	return lines, nil
}

// WriteLines replaces the list atomically. An empty slice leaves the key deleted.
func (l *List) WriteLines(ctx context.Context, lines []string) error {
	log := logger.Log(ctx).With(zap.String("method", methodWriteLines), zap.String("key", l.key))

	values := make([]interface{}, len(lines))
	for i, line := range lines {
		values[i] = line
	}

	err := retry.Do(ctx, methodWriteLines, l.retry, func(ctx context.Context) error {
		_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, l.key)
			if len(values) > 0 {
				pipe.RPush(ctx, l.key, values...)
			}
			return nil
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxStore, err)
	}

	log.Debug(ctx, msgListStored, zap.Int("lines", len(lines)))
	return nil
}
