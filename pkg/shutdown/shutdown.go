// Package shutdown runs exit hooks under a shared deadline.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when the deadline expires before every hook ran.
var ErrTimeout = errors.New("shutdown timed out")

// Hook is one step of the exit sequence.
type Hook func(context.Context) error

// Run calls hooks in order with a context bounded by timeout. A failing hook
// does not stop the ones after it; all failures are joined. Hooks not yet
// started when the deadline passes are skipped.
func Run(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	for i, hook := range hooks {
		if ctx.Err() != nil {
			errs = append(errs, fmt.Errorf("%w: %d hooks skipped", ErrTimeout, len(hooks)-i))
			break
		}
		if err := hook(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
