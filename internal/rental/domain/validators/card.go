package validators

import (
	"fmt"
	"strings"
)

const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldCNP       = "cnp"
)

const (
	msgNameLength = "The %s needs to be between 2 and 16 characters."
	msgNameSpaces = "The %s can't contain spaces."
	msgCNPLength  = "The CNP must have 13 digits."
	msgCNPDigits  = "The CNP must be made out of digits."
)

func name(value, field, label string) error {
	if !satisfies(value, "min=2,max=16") {
		return fieldError(field, fmt.Sprintf(msgNameLength, label))
	}
	if strings.Contains(value, " ") {
		return fieldError(field, fmt.Sprintf(msgNameSpaces, label))
	}
	return nil
}

// FirstName accepts 2..16 characters without spaces.
func FirstName(firstName string) error {
	return name(firstName, FieldFirstName, "first name")
}

// LastName accepts 2..16 characters without spaces.
func LastName(lastName string) error {
	return name(lastName, FieldLastName, "last name")
}

// CNP accepts exactly 13 ASCII digits.
func CNP(cnp string) error {
	if !satisfies(cnp, "len=13") {
		return fieldError(FieldCNP, msgCNPLength)
	}
	if !satisfies(cnp, "number") {
		return fieldError(FieldCNP, msgCNPDigits)
	}
	return nil
}
