package entities

import (
	"fmt"

	"moviecards/internal/rental/domain/validators"
)

const errCtxDecodingReservation = "decoding reservation"

const defaultReservationHour = "00:00"

// Reservation books a movie at a date and hour. cardID is nil for walk-in
// customers without a loyalty card. Neither id is checked against the
// movie or card collections.
type Reservation struct {
	id      uint32
	movieID uint32
	cardID  *uint32
	date    Date
	hour    string
}

// NewReservation validates every field and returns the reservation.
func NewReservation(id, movieID uint32, cardID *uint32, date Date, hour string) (Reservation, error) {
	reservation := Reservation{
		id:      id,
		movieID: movieID,
		cardID:  copyID(cardID),
		date:    date,
		hour:    hour,
	}
	if err := ValidateReservation(reservation); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

// ValidateReservation runs every reservation rule.
func ValidateReservation(r Reservation) error {
	return validators.Collect(
		validators.ID(r.id),
		validators.ID(r.movieID),
		validators.CardID(r.cardID),
		validateDate(r.date),
		validators.Hour(r.hour),
	)
}

func copyID(id *uint32) *uint32 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func (r Reservation) ID() uint32      { return r.id }
func (r Reservation) MovieID() uint32 { return r.movieID }
func (r Reservation) Date() Date      { return r.date }
func (r Reservation) Hour() string    { return r.hour }

// CardID reports the loyalty card, if the reservation has one.
func (r Reservation) CardID() (uint32, bool) {
	if r.cardID == nil {
		return 0, false
	}
	return *r.cardID, true
}

func (r *Reservation) SetID(id uint32) error {
	if err := validators.ID(id); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) SetMovieID(movieID uint32) error {
	if err := validators.ID(movieID); err != nil {
		return err
	}
	r.movieID = movieID
	return nil
}

// SetCardID replaces the card; nil turns the reservation into a walk-in.
func (r *Reservation) SetCardID(cardID *uint32) error {
	if err := validators.CardID(cardID); err != nil {
		return err
	}
	r.cardID = copyID(cardID)
	return nil
}

func (r *Reservation) SetDate(date Date) error {
	if err := validateDate(date); err != nil {
		return err
	}
	r.date = date
	return nil
}

func (r *Reservation) SetHour(hour string) error {
	if err := validators.Hour(hour); err != nil {
		return err
	}
	r.hour = hour
	return nil
}

// ToCSV encodes id, movie id, card id (or None), date, hour.
func (r Reservation) ToCSV() string {
	return joinCSV(
		formatUint32(r.id),
		formatUint32(r.movieID),
		formatOptionalUint32(r.cardID),
		r.date.String(),
		r.hour,
	)
}

// ReservationFromCSV decodes a line written by ToCSV.
func ReservationFromCSV(line string) (Reservation, error) {
	f := newFields(line)

	reservation, err := NewReservation(
		f.uint32(0),
		f.uint32(0),
		f.optionalUint32(),
		f.date(DefaultDate()),
		f.str(defaultReservationHour),
	)
	if err != nil {
		return Reservation{}, fmt.Errorf("%s: %w", errCtxDecodingReservation, err)
	}
	return reservation, nil
}
