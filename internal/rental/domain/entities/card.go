package entities

import (
	"fmt"

	"moviecards/internal/rental/domain/validators"
)

const errCtxDecodingCard = "decoding card"

// Fallbacks used by CardFromCSV for missing or unreadable fields.
const (
	defaultCardFirstName = "firstname"
	defaultCardLastName  = "lastname"
	defaultCardCNP       = "1234567890123"
)

// Card is a customer loyalty card.
type Card struct {
	id               uint32
	firstName        string
	lastName         string
	cnp              string
	birthday         Date
	registrationDate Date
	points           uint32
}

// NewCard validates every field and returns the card, or a
// *validators.ValidationError listing all violated rules.
func NewCard(id uint32, firstName, lastName, cnp string, birthday, registrationDate Date, points uint32) (Card, error) {
	card := Card{
		id:               id,
		firstName:        firstName,
		lastName:         lastName,
		cnp:              cnp,
		birthday:         birthday,
		registrationDate: registrationDate,
		points:           points,
	}
	if err := ValidateCard(card); err != nil {
		return Card{}, err
	}
	return card, nil
}

// ValidateCard runs every card rule.
func ValidateCard(c Card) error {
	return validators.Collect(
		validators.ID(c.id),
		validators.FirstName(c.firstName),
		validators.LastName(c.lastName),
		validators.CNP(c.cnp),
		validateDate(c.birthday),
		validateDate(c.registrationDate),
	)
}

func (c Card) ID() uint32             { return c.id }
func (c Card) FirstName() string      { return c.firstName }
func (c Card) LastName() string       { return c.lastName }
func (c Card) CNP() string            { return c.cnp }
func (c Card) Birthday() Date         { return c.birthday }
func (c Card) RegistrationDate() Date { return c.registrationDate }
func (c Card) Points() uint32         { return c.points }

func (c *Card) SetID(id uint32) error {
	if err := validators.ID(id); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Card) SetFirstName(firstName string) error {
	if err := validators.FirstName(firstName); err != nil {
		return err
	}
	c.firstName = firstName
	return nil
}

func (c *Card) SetLastName(lastName string) error {
	if err := validators.LastName(lastName); err != nil {
		return err
	}
	c.lastName = lastName
	return nil
}

func (c *Card) SetCNP(cnp string) error {
	if err := validators.CNP(cnp); err != nil {
		return err
	}
	c.cnp = cnp
	return nil
}

func (c *Card) SetBirthday(birthday Date) error {
	if err := validateDate(birthday); err != nil {
		return err
	}
	c.birthday = birthday
	return nil
}

func (c *Card) SetRegistrationDate(registrationDate Date) error {
	if err := validateDate(registrationDate); err != nil {
		return err
	}
	c.registrationDate = registrationDate
	return nil
}

// SetPoints never fails; points have no bounds.
func (c *Card) SetPoints(points uint32) error {
	c.points = points
	return nil
}

// ToCSV encodes id, first name, last name, cnp, birthday, registration date, points.
func (c Card) ToCSV() string {
	return joinCSV(
		formatUint32(c.id),
		c.firstName,
		c.lastName,
		c.cnp,
		c.birthday.String(),
		c.registrationDate.String(),
		formatUint32(c.points),
	)
}

// CardFromCSV decodes a line written by ToCSV. Unreadable fields fall back to
// defaults; the result must still pass NewCard.
func CardFromCSV(line string) (Card, error) {
	f := newFields(line)

	card, err := NewCard(
		f.uint32(0),
		f.str(defaultCardFirstName),
		f.str(defaultCardLastName),
		f.str(defaultCardCNP),
		f.date(DefaultDate()),
		f.date(DefaultDate()),
		f.uint32(0),
	)
	if err != nil {
		return Card{}, fmt.Errorf("%s: %w", errCtxDecodingCard, err)
	}
	return card, nil
}
