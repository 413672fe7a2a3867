package validators

const (
	FieldTitle       = "title"
	FieldReleaseYear = "release_year"
	FieldPrice       = "price"
)

const (
	msgTitleLength      = "The title needs to be between 2 and 20 characters."
	msgReleaseYearRange = "The release year needs to be between 1926 and 2024."
	msgPriceRange       = "The price must be lower than 10000."
)

// Title accepts 2..20 characters.
func Title(title string) error {
	if !satisfies(title, "min=2,max=20") {
		return fieldError(FieldTitle, msgTitleLength)
	}
	return nil
}

// ReleaseYear accepts 1926..2024.
func ReleaseYear(year uint32) error {
	if !satisfies(year, "gt=1925,lt=2025") {
		return fieldError(FieldReleaseYear, msgReleaseYearRange)
	}
	return nil
}

// Price accepts anything below 10000.
func Price(price uint32) error {
	if !satisfies(price, "lt=10000") {
		return fieldError(FieldPrice, msgPriceRange)
	}
	return nil
}
