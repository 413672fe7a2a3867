// Package retry repeats an operation with exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"moviecards/pkg/logger"
)

// ErrContextCanceled is returned when ctx ends while waiting for the next attempt.
var ErrContextCanceled = errors.New("context was canceled during retry")

const (
	msgAttemptFailed = "attempt failed, retrying"
	msgSucceeded     = "succeeded after retry"
	msgGaveUp        = "max attempts reached"
)

// Config controls the retry loop.
type Config struct {
	// MaxAttempts includes the first call.
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
	// ShouldRetry reports whether err is transient. Nil retries every error
	// except context cancellation.
	ShouldRetry func(error) bool
}

// DefaultConfig returns three attempts starting at 100ms, capped at 1s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		BackoffFactor:  2.0,
	}
}

func notCanceled(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Do calls op until it succeeds, returns a permanent error, or runs out of attempts.
func Do(ctx context.Context, name string, cfg Config, op func(context.Context) error) error {
	shouldRetry := cfg.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = notCanceled
	}
	attempts := max(cfg.MaxAttempts, 1)

	log := logger.Log(ctx).With(zap.String("retry", name))
	backoff := cfg.InitialBackoff

	var err error
	for attempt := 1; ; attempt++ {
		err = op(ctx)
		if err == nil {
			if attempt > 1 {
				log.Info(ctx, msgSucceeded, zap.Int("attempts", attempt))
			}
			return nil
		}
		if !shouldRetry(err) {
			return err
		}
		if attempt >= attempts {
			log.Warn(ctx, msgGaveUp, zap.Int("attempts", attempt), zap.Error(err))
			return err
		}

		log.Debug(ctx, msgAttemptFailed,
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err())
		}

		backoff = time.Duration(float64(backoff) * cfg.BackoffFactor)
		if cfg.MaxBackoff > 0 && backoff > cfg.MaxBackoff {
			backoff = cfg.MaxBackoff
		}
	}
}
