package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"moviecards/internal/rental/domain/validators"
)

const dateSeparator = "."

var errDateFormat = errors.New("date must look like d.m.y")

// Date is a plain day/month/year triple. It is not normalised against the
// calendar; the validators only bound each part.
type Date struct {
	day   uint8
	month uint8
	year  uint32
}

// NewDate validates and returns the date.
func NewDate(day, month uint8, year uint32) (Date, error) {
	d := Date{day: day, month: month, year: year}
	if err := validators.Date(day, month, year); err != nil {
		return Date{}, err
	}
	return d, nil
}

// DefaultDate is 1.1.2000, the fallback used when a stored date is unreadable.
func DefaultDate() Date {
	return Date{day: 1, month: 1, year: 2000}
}

// ParseDate reads d.m.yyyy (zero padding optional) and validates the result.
func ParseDate(s string) (Date, error) {
	d, err := parseDate(s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(d.day, d.month, d.year)
}

// parseDate only rejects text that is not three dot-separated numbers. Like
// NewDate it knows nothing about month lengths, so 30.2.2001 survives a
// save and reload. Range checks are left to the owning record.
func parseDate(s string) (Date, error) {
	parts := strings.Split(s, dateSeparator)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, errDateFormat)
	}

	day, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Date{}, fmt.Errorf("parsing day of %q: %w", s, err)
	}
	month, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Date{}, fmt.Errorf("parsing month of %q: %w", s, err)
	}
	year, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return Date{}, fmt.Errorf("parsing year of %q: %w", s, err)
	}

	return Date{day: uint8(day), month: uint8(month), year: uint32(year)}, nil
}

func (d Date) Day() uint8     { return d.day }
func (d Date) Month() uint8   { return d.month }
func (d Date) Year() uint32   { return d.year }
func (d Date) String() string { return fmt.Sprintf("%d.%d.%d", d.day, d.month, d.year) }

func (d *Date) SetDay(day uint8) error {
	if err := validators.Day(day); err != nil {
		return err
	}
	d.day = day
	return nil
}

func (d *Date) SetMonth(month uint8) error {
	if err := validators.Month(month); err != nil {
		return err
	}
	d.month = month
	return nil
}

func (d *Date) SetYear(year uint32) error {
	if err := validators.Year(year); err != nil {
		return err
	}
	d.year = year
	return nil
}

func validateDate(d Date) error {
	return validators.Date(d.day, d.month, d.year)
}
