// Package store provides the in-memory record collection bound to one line storage.
package store

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"moviecards/internal/rental/domain/entities"
	"moviecards/internal/rental/ports/repositories"
	"moviecards/pkg/logger"
)

const (
	methodLoad   = "Store.Load"
	methodSave   = "Store.Save"
	methodAdd    = "Store.Add"
	methodRemove = "Store.Remove"
	methodUpdate = "Store.Update"
)

const (
	msgLoading       = "loading records"
	msgLoaded        = "records loaded"
	msgNothingStored = "nothing stored yet"
	msgDecodeFailed  = "failed to decode stored line"
	msgSaving        = "saving records"
	msgSaved         = "records saved"
	msgSaveFailed    = "failed to save records"
	msgAdded         = "record added"
	msgRemoved       = "record removed"
	msgUpdated       = "record updated"
	msgOutOfBounds   = "index out of bounds"
)

const (
	errCtxReadLines  = "failed to read %s"
	errCtxDecodeLine = "%s line %d"
	errCtxWriteLines = "failed to write %s"
)

// Store keeps records of one kind in insertion order. Storage is only touched
// by Load and Save.
type Store[T entities.Record] struct {
	name    string
	storage repositories.LineStorage
	decode  entities.Decoder[T]
	records []T
}

var _ repositories.RecordStore[entities.Card] = (*Store[entities.Card])(nil)

// New returns an empty store. name only labels log entries.
func New[T entities.Record](storage repositories.LineStorage, decode entities.Decoder[T], name string) *Store[T] {
	return &Store[T]{
		name:    name,
		storage: storage,
		decode:  decode,
	}
}

// Load appends the stored records, in stored order, after the ones already
// in memory. Nothing stored yet leaves the store as it is. Blank lines are
// skipped. The first line that does not decode aborts the load and nothing
// from it is appended.
func (s *Store[T]) Load(ctx context.Context) error {
	log := s.log(ctx, methodLoad)
	log.Debug(ctx, msgLoading)

	lines, err := s.storage.ReadLines(ctx)
	if err != nil {
		return fmt.Errorf(errCtxReadLines+": %w", s.storage.Location(), err)
	}
	if lines == nil {
		log.Info(ctx, msgNothingStored, zap.Int("count", len(s.records)))
		return nil
	}

	records := make([]T, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := s.decode(line)
		if err != nil {
			log.Error(ctx, msgDecodeFailed, zap.Int("line", i+1), zap.Error(err))
			return fmt.Errorf(errCtxDecodeLine+": %w", s.storage.Location(), i+1, err)
		}
		records = append(records, record)
	}

	s.records = append(s.records, records...)
	log.Info(ctx, msgLoaded, zap.Int("loaded", len(records)), zap.Int("count", len(s.records)))
	return nil
}

// Save writes every record, one per line, in memory order.
func (s *Store[T]) Save(ctx context.Context) error {
	log := s.log(ctx, methodSave)
	log.Debug(ctx, msgSaving, zap.Int("count", len(s.records)))

	lines := make([]string, 0, len(s.records))
	for _, record := range s.records {
		lines = append(lines, record.ToCSV())
	}

	if err := s.storage.WriteLines(ctx, lines); err != nil {
		log.Error(ctx, msgSaveFailed, zap.Error(err))
		return fmt.Errorf(errCtxWriteLines+": %w", s.storage.Location(), err)
	}

	log.Info(ctx, msgSaved, zap.Int("count", len(lines)))
	return nil
}

// Add appends record.
func (s *Store[T]) Add(ctx context.Context, record T) error {
	s.records = append(s.records, record)
	s.log(ctx, methodAdd).Debug(ctx, msgAdded, zap.Int("index", len(s.records)-1))
	return nil
}

// Remove deletes the record at index. Index 0 is never removable.
func (s *Store[T]) Remove(ctx context.Context, index int) error {
	if index <= 0 || index >= len(s.records) {
		s.log(ctx, methodRemove).Warn(ctx, msgOutOfBounds, zap.Int("index", index), zap.Int("len", len(s.records)))
		return entities.ErrIndexOutOfBounds
	}

	s.records = append(s.records[:index], s.records[index+1:]...)
	s.log(ctx, methodRemove).Debug(ctx, msgRemoved, zap.Int("index", index))
	return nil
}

// Update replaces the record at index.
func (s *Store[T]) Update(ctx context.Context, index int, record T) error {
	if !s.inBounds(index) {
		s.log(ctx, methodUpdate).Warn(ctx, msgOutOfBounds, zap.Int("index", index), zap.Int("len", len(s.records)))
		return entities.ErrIndexOutOfBounds
	}

	s.records[index] = record
	s.log(ctx, methodUpdate).Debug(ctx, msgUpdated, zap.Int("index", index))
	return nil
}

// Get returns a copy of the record at index.
func (s *Store[T]) Get(index int) (T, error) {
	if !s.inBounds(index) {
		var zero T
		return zero, entities.ErrIndexOutOfBounds
	}
	return s.records[index], nil
}

// GetAll returns a copy of every record.
func (s *Store[T]) GetAll() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store[T]) Len() int {
	return len(s.records)
}

func (s *Store[T]) inBounds(index int) bool {
	return index >= 0 && index < len(s.records)
}

func (s *Store[T]) log(ctx context.Context, method string) *logger.Logger {
	return logger.Log(ctx).With(
		zap.String("method", method),
		zap.String("store", s.name),
		zap.String("location", s.storage.Location()),
	)
}
