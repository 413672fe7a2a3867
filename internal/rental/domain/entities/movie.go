package entities

import (
	"fmt"
	"strconv"

	"moviecards/internal/rental/domain/validators"
)

const errCtxDecodingMovie = "decoding movie"

const (
	defaultMovieTitle       = "placeholder"
	defaultMovieReleaseYear = 1926
)

// Movie is a title available for rent.
type Movie struct {
	id          uint32
	title       string
	releaseYear uint32
	price       uint32
	inProgram   bool
}

// NewMovie validates every field and returns the movie.
func NewMovie(id uint32, title string, releaseYear, price uint32, inProgram bool) (Movie, error) {
	movie := Movie{
		id:          id,
		title:       title,
		releaseYear: releaseYear,
		price:       price,
		inProgram:   inProgram,
	}
	if err := ValidateMovie(movie); err != nil {
		return Movie{}, err
	}
	return movie, nil
}

// ValidateMovie runs every movie rule.
func ValidateMovie(m Movie) error {
	return validators.Collect(
		validators.ID(m.id),
		validators.Title(m.title),
		validators.ReleaseYear(m.releaseYear),
		validators.Price(m.price),
	)
}

func (m Movie) ID() uint32          { return m.id }
func (m Movie) Title() string       { return m.title }
func (m Movie) ReleaseYear() uint32 { return m.releaseYear }
func (m Movie) Price() uint32       { return m.price }
func (m Movie) InProgram() bool     { return m.inProgram }

func (m *Movie) SetID(id uint32) error {
	if err := validators.ID(id); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Movie) SetTitle(title string) error {
	if err := validators.Title(title); err != nil {
		return err
	}
	m.title = title
	return nil
}

func (m *Movie) SetReleaseYear(releaseYear uint32) error {
	if err := validators.ReleaseYear(releaseYear); err != nil {
		return err
	}
	m.releaseYear = releaseYear
	return nil
}

func (m *Movie) SetPrice(price uint32) error {
	if err := validators.Price(price); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Movie) SetInProgram(inProgram bool) error {
	m.inProgram = inProgram
	return nil
}

// ToCSV encodes id, title, release year, price, in program.
func (m Movie) ToCSV() string {
	return joinCSV(
		formatUint32(m.id),
		m.title,
		formatUint32(m.releaseYear),
		formatUint32(m.price),
		strconv.FormatBool(m.inProgram),
	)
}

// MovieFromCSV decodes a line written by ToCSV.
func MovieFromCSV(line string) (Movie, error) {
	f := newFields(line)

	movie, err := NewMovie(
		f.uint32(0),
		f.str(defaultMovieTitle),
		f.uint32(defaultMovieReleaseYear),
		f.uint32(0),
		f.bool(false),
	)
	if err != nil {
		return Movie{}, fmt.Errorf("%s: %w", errCtxDecodingMovie, err)
	}
	return movie, nil
}
