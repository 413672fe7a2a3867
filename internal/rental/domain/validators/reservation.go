package validators

import (
	"strconv"
	"strings"
)

const FieldHour = "hour"

const (
	hourLayoutLength = 5
	hourSeparators   = ".:-"
)

const (
	msgHourLength      = "The time must have 5 characters. (hh:mm)"
	msgHourNotNumber   = "The hour must be a number."
	msgHourRange       = "The hour must be from 0 to 23."
	msgMinuteNotNumber = "The minutes must be a number."
	msgMinuteRange     = "The minutes must be from 0 to 59."
	msgHourSeparator   = "The time separators must be of the following kind: '.', ':', '-'"
)

// Hour accepts hh:mm with hh in 0..23, mm in 0..59 and one of . : - between
// them. Only the first violated rule is reported.
func Hour(hour string) error {
	if len(hour) != hourLayoutLength {
		return fieldError(FieldHour, msgHourLength)
	}

	h, err := strconv.Atoi(hour[0:2])
	if err != nil {
		return fieldError(FieldHour, msgHourNotNumber)
	}
	if !satisfies(h, "min=0,max=23") {
		return fieldError(FieldHour, msgHourRange)
	}

	m, err := strconv.Atoi(hour[3:5])
	if err != nil {
		return fieldError(FieldHour, msgMinuteNotNumber)
	}
	if !satisfies(m, "min=0,max=59") {
		return fieldError(FieldHour, msgMinuteRange)
	}

	if !strings.ContainsRune(hourSeparators, rune(hour[2])) {
		return fieldError(FieldHour, msgHourSeparator)
	}
	return nil
}
