package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type runIDKey struct{}

// NewRunContext tags ctx with the id of one program run. An empty runID keeps
// the id already in ctx, or generates a fresh one when there is none.
func NewRunContext(ctx context.Context, runID string) context.Context {
	if runID == "" {
		if _, ok := RunIDFrom(ctx); ok {
			return ctx
		}
		runID = uuid.NewString()
	}
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFrom reports the run id stored in ctx.
func RunIDFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

func withRunID(ctx context.Context, fields []zap.Field) []zap.Field {
	if id, ok := RunIDFrom(ctx); ok {
		return append(fields, zap.String(RunID, id))
	}
	return fields
}
