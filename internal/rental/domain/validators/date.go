package validators

// Field names used by the date rules.
const (
	FieldDay   = "day"
	FieldMonth = "month"
	FieldYear  = "year"
)

const (
	msgDayRange   = "The date's day should be between 1 and 30."
	msgMonthRange = "The date's month should be between 1 and 12."
	msgYearRange  = "The date's year should be between 1925 and 2025."
)

// Day accepts 1..30. The 31st is rejected.
func Day(day uint8) error {
	if !satisfies(day, "min=1,max=30") {
		return fieldError(FieldDay, msgDayRange)
	}
	return nil
}

// Month accepts 1..12.
func Month(month uint8) error {
	if !satisfies(month, "min=1,max=12") {
		return fieldError(FieldMonth, msgMonthRange)
	}
	return nil
}

// Year accepts 1925..2025.
func Year(year uint32) error {
	if !satisfies(year, "min=1925,max=2025") {
		return fieldError(FieldYear, msgYearRange)
	}
	return nil
}

// Date runs all three date rules.
func Date(day, month uint8, year uint32) error {
	return Collect(
		Day(day),
		Month(month),
		Year(year),
	)
}
