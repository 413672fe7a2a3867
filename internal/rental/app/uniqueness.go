// Package app implements the rental use cases on top of the record stores.
package app

import (
	"moviecards/internal/rental/domain/entities"
)

const (
	msgConflict      = "record conflicts with a stored one"
	msgRecordAdded   = "record added"
	msgRecordUpdated = "record updated"
	msgRecordRemoved = "record removed"
)

// identified is satisfied by every rental record.
type identified interface {
	entities.Record
	ID() uint32
}

// uniqueness describes the keys a collection keeps unique. sameKey is nil when
// the id is the only key.
type uniqueness[T identified] struct {
	sameKey       func(a, b T) bool
	errKeyExists  error
	errIDExists   error
	errDiffKey    error
	errDiffID     error
	errNoneOthers error
}

// checkAdd compares candidate with every stored record, natural key first.
func (u uniqueness[T]) checkAdd(records []T, candidate T) error {
	for _, existing := range records {
		if u.sameKey != nil && u.sameKey(existing, candidate) {
			return u.errKeyExists
		}
		if existing.ID() == candidate.ID() {
			return u.errIDExists
		}
	}
	return nil
}

// checkUpdate compares candidate with every record except the one at index.
// When no other record exists the update is refused.
func (u uniqueness[T]) checkUpdate(records []T, index int, candidate T) error {
	foundOther := false
	for i, existing := range records {
		if i == index {
			continue
		}
		foundOther = true
		if u.sameKey != nil && u.sameKey(existing, candidate) {
			return u.errDiffKey
		}
		if existing.ID() == candidate.ID() {
			return u.errDiffID
		}
	}
	if !foundOther {
		return u.errNoneOthers
	}
	return nil
}
