package entities

import (
	"errors"

	"moviecards/internal/rental/domain/validators"
)

// ErrValidation is matched by every failed constructor or aggregate check.
var ErrValidation = validators.ErrValidation

// Messages below are shown to users verbatim.
var ErrIndexOutOfBounds = errors.New("Index out of bounds")

// Card conflicts.
var (
	ErrCardCNPExists          = errors.New("A card with this CNP already exists.")
	ErrCardIDExists           = errors.New("A card with this ID already exists")
	ErrDifferentCardCNPExists = errors.New("A different card with that CNP already exists.")
	ErrDifferentCardIDExists  = errors.New("A different card with that ID already exists")
	ErrCardNotFound           = errors.New("There is no card with that ID.")
)

// Movie conflicts.
var (
	ErrMovieTitleExists          = errors.New("A movie with this title already exists")
	ErrMovieIDExists             = errors.New("A movie with this ID already exists.")
	ErrDifferentMovieTitleExists = errors.New("A different movie with that title already exists")
	ErrDifferentMovieIDExists    = errors.New("A different movie with that ID already exists")
	ErrMovieNotFound             = errors.New("There is no movie with that ID")
)

// Reservation conflicts.
var (
	ErrReservationIDExists          = errors.New("A reservation with this ID already exists.")
	ErrDifferentReservationIDExists = errors.New("A different reservation with that ID already exists")
	ErrReservationNotFound          = errors.New("There is no reservation with that ID.")
)
