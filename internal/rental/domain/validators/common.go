// Package validators holds the field-level rules for cards, movies and
// reservations and the combinator that turns them into one aggregate report.
package validators

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation matches every aggregate failure via errors.Is.
var ErrValidation = errors.New("validation failed")

var validate = validator.New()

// FieldError is a single violated rule.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

func fieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// ValidationError reports every violated rule of one record.
type ValidationError struct {
	Fields []*FieldError
}

// Error joins the messages with single spaces.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, " ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether field failed.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Collect merges the results of independent field checks. It never stops at
// the first failure. Nested ValidationErrors are flattened, so a Date
// failure inside a Card shows up as the Date's own field messages.
func Collect(results ...error) error {
	var agg ValidationError
	for _, err := range results {
		if err == nil {
			continue
		}
		var nested *ValidationError
		var field *FieldError
		switch {
		case errors.As(err, &nested):
			agg.Fields = append(agg.Fields, nested.Fields...)
		case errors.As(err, &field):
			agg.Fields = append(agg.Fields, field)
		default:
			agg.Fields = append(agg.Fields, fieldError("", err.Error()))
		}
	}
	if len(agg.Fields) == 0 {
		return nil
	}
	return &agg
}

// ID accepts every id. Kept as a hook so every record validates its id.
func ID(uint32) error {
	return nil
}

// CardID accepts a missing card (walk-in) or any id that passes ID.
func CardID(id *uint32) error {
	if id == nil {
		return nil
	}
	return ID(*id)
}

func satisfies(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}
