// Package repositories defines the storage ports used by the rental services.
package repositories

import (
	"context"

	"moviecards/internal/rental/domain/entities"
)

// RecordStore is an ordered, index-addressed collection of records.
type RecordStore[T entities.Record] interface {
	Add(ctx context.Context, record T) error
	Remove(ctx context.Context, index int) error
	Update(ctx context.Context, index int, record T) error
	Get(index int) (T, error)
	GetAll() []T
}

// LineStorage persists a collection as an ordered list of text lines.
type LineStorage interface {
	// ReadLines returns nil, nil when nothing has been stored yet.
	ReadLines(ctx context.Context) ([]string, error)
	// WriteLines replaces the stored content.
	WriteLines(ctx context.Context, lines []string) error
	// Location names the backing file or key for log output.
	Location() string
}
