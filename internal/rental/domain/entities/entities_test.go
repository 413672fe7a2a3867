package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviecards/internal/rental/domain/entities"
	"moviecards/internal/rental/domain/validators"
)

func mustDate(t *testing.T, day, month uint8, year uint32) entities.Date {
	t.Helper()
	d, err := entities.NewDate(day, month, year)
	require.NoError(t, err)
	return d
}

func sampleCard(t *testing.T) entities.Card {
	t.Helper()
	card, err := entities.NewCard(1, "Adrian", "Placinta", "1234567890123",
		mustDate(t, 26, 4, 2000), mustDate(t, 30, 5, 2003), 0)
	require.NoError(t, err)
	return card
}

func TestDate(t *testing.T) {
	t.Run("valid date keeps its parts", func(t *testing.T) {
		d := mustDate(t, 26, 4, 2000)
		assert.Equal(t, uint8(26), d.Day())
		assert.Equal(t, uint8(4), d.Month())
		assert.Equal(t, uint32(2000), d.Year())
		assert.Equal(t, "26.4.2000", d.String())
	})

	t.Run("invalid date reports every part", func(t *testing.T) {
		_, err := entities.NewDate(0, 0, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrValidation)

		var verr *validators.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 3)
	})

	t.Run("no calendar normalisation", func(t *testing.T) {
		d := mustDate(t, 30, 2, 2001)
		assert.Equal(t, "30.2.2001", d.String())
	})

	t.Run("parse accepts padded and unpadded", func(t *testing.T) {
		for _, s := range []string{"1.1.2000", "01.01.2000"} {
			d, err := entities.ParseDate(s)
			require.NoError(t, err, s)
			assert.Equal(t, entities.DefaultDate(), d)
		}
	})

	t.Run("parse keeps dates missing from the calendar", func(t *testing.T) {
		for _, s := range []string{"30.2.2001", "29.2.2001", "30.02.2001"} {
			d, err := entities.ParseDate(s)
			require.NoError(t, err, s)
			assert.Equal(t, uint8(2), d.Month())
		}
	})

	t.Run("parse rejects garbage and out of range", func(t *testing.T) {
		for _, s := range []string{"", "2000-01-01", "31.02.2000", "1.1.1900", "1.1", "1.1.2000.5", "a.1.2000", "300.1.2000", "-1.1.2000"} {
			_, err := entities.ParseDate(s)
			assert.Error(t, err, s)
		}
	})

	t.Run("setters validate their own field", func(t *testing.T) {
		d := mustDate(t, 1, 1, 2000)

		require.NoError(t, d.SetDay(15))
		require.NoError(t, d.SetMonth(6))
		require.NoError(t, d.SetYear(2010))
		assert.Equal(t, "15.6.2010", d.String())

		assert.Error(t, d.SetDay(31))
		assert.Error(t, d.SetMonth(13))
		assert.Error(t, d.SetYear(2030))
		assert.Equal(t, "15.6.2010", d.String(), "failed setters leave the date unchanged")
	})
}

func TestNewCard(t *testing.T) {
	t.Run("accessors return the inputs", func(t *testing.T) {
		card := sampleCard(t)

		assert.Equal(t, uint32(1), card.ID())
		assert.Equal(t, "Adrian", card.FirstName())
		assert.Equal(t, "Placinta", card.LastName())
		assert.Equal(t, "1234567890123", card.CNP())
		assert.Equal(t, mustDate(t, 26, 4, 2000), card.Birthday())
		assert.Equal(t, mustDate(t, 30, 5, 2003), card.RegistrationDate())
		assert.Equal(t, uint32(0), card.Points())
	})

	t.Run("short first name", func(t *testing.T) {
		_, err := entities.NewCard(1, "A", "Placinta", "1234567890123",
			mustDate(t, 26, 4, 2000), mustDate(t, 30, 5, 2003), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrValidation)
		assert.Contains(t, err.Error(), "The first name needs to be between 2 and 16 characters.")
	})

	t.Run("every violation is reported", func(t *testing.T) {
		_, err := entities.NewCard(1, "A", "Has Space", "123456789012",
			mustDate(t, 26, 4, 2000), mustDate(t, 30, 5, 2003), 0)
		require.Error(t, err)

		var verr *validators.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.True(t, verr.Has(validators.FieldFirstName))
		assert.True(t, verr.Has(validators.FieldLastName))
		assert.True(t, verr.Has(validators.FieldCNP))
		assert.Contains(t, err.Error(), "The last name can't contain spaces.")
		assert.Contains(t, err.Error(), "The CNP must have 13 digits.")
	})
}

func TestCardSetters(t *testing.T) {
	card := sampleCard(t)

	require.NoError(t, card.SetFirstName("Maria"))
	require.NoError(t, card.SetLastName("Ionescu"))
	require.NoError(t, card.SetCNP("2990101123456"))
	require.NoError(t, card.SetID(9))
	require.NoError(t, card.SetPoints(150))
	require.NoError(t, card.SetBirthday(mustDate(t, 1, 1, 1999)))
	require.NoError(t, card.SetRegistrationDate(mustDate(t, 2, 2, 2020)))

	assert.Error(t, card.SetFirstName("M"))
	assert.Error(t, card.SetLastName("Ion escu"))
	assert.Error(t, card.SetCNP("abc"))

	assert.Equal(t, "Maria", card.FirstName())
	assert.Equal(t, "Ionescu", card.LastName())
	assert.Equal(t, "2990101123456", card.CNP())
	assert.Equal(t, uint32(9), card.ID())
	assert.Equal(t, uint32(150), card.Points())
}

func TestCardCSV(t *testing.T) {
	card := sampleCard(t)

	line := card.ToCSV()
	assert.Equal(t, `"1","Adrian","Placinta","1234567890123","26.4.2000","30.5.2003","0"`, line)

	decoded, err := entities.CardFromCSV(line)
	require.NoError(t, err)
	assert.Equal(t, card, decoded)

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		decoded, err := entities.CardFromCSV("  " + line + "\r\n")
		require.NoError(t, err)
		assert.Equal(t, card, decoded)
	})

	t.Run("missing fields take defaults", func(t *testing.T) {
		decoded, err := entities.CardFromCSV(`"5"`)
		require.NoError(t, err)
		assert.Equal(t, uint32(5), decoded.ID())
		assert.Equal(t, "firstname", decoded.FirstName())
		assert.Equal(t, "lastname", decoded.LastName())
		assert.Equal(t, "1234567890123", decoded.CNP())
		assert.Equal(t, entities.DefaultDate(), decoded.Birthday())
		assert.Equal(t, uint32(0), decoded.Points())
	})

	t.Run("malformed numbers and dates take defaults", func(t *testing.T) {
		decoded, err := entities.CardFromCSV(`"x","Adrian","Placinta","1234567890123","someday","30.5.2003","-4"`)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), decoded.ID())
		assert.Equal(t, entities.DefaultDate(), decoded.Birthday())
		assert.Equal(t, uint32(0), decoded.Points())
	})

	t.Run("invalid values still fail construction", func(t *testing.T) {
		_, err := entities.CardFromCSV(`"1","A","Placinta","1234567890123","26.4.2000","30.5.2003","0"`)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrValidation)
		assert.Contains(t, err.Error(), "decoding card")
	})

	t.Run("dates missing from the calendar round trip", func(t *testing.T) {
		odd, err := entities.NewCard(2, "Maria", "Ionescu", "2990101123456",
			mustDate(t, 30, 2, 2001), mustDate(t, 29, 2, 2001), 5)
		require.NoError(t, err)

		decoded, err := entities.CardFromCSV(odd.ToCSV())
		require.NoError(t, err)
		assert.Equal(t, odd, decoded)
	})

	t.Run("well formed but out of range date fails", func(t *testing.T) {
		_, err := entities.CardFromCSV(`"1","Adrian","Placinta","1234567890123","31.1.2000","30.5.2003","0"`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "day should be between 1 and 30")
	})
}

func TestMovie(t *testing.T) {
	movie, err := entities.NewMovie(3, "Inception", 2010, 25, true)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), movie.ID())
	assert.Equal(t, "Inception", movie.Title())
	assert.Equal(t, uint32(2010), movie.ReleaseYear())
	assert.Equal(t, uint32(25), movie.Price())
	assert.True(t, movie.InProgram())

	t.Run("release year lower bound", func(t *testing.T) {
		_, err := entities.NewMovie(3, "Inception", 1925, 25, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "release year")
	})

	t.Run("aggregate report", func(t *testing.T) {
		_, err := entities.NewMovie(3, "I", 2030, 10000, false)
		require.Error(t, err)
		assert.Equal(t,
			"The title needs to be between 2 and 20 characters. The release year needs to be between 1926 and 2024. The price must be lower than 10000.",
			err.Error())
	})

	t.Run("setters", func(t *testing.T) {
		m := movie
		require.NoError(t, m.SetTitle("Tenet"))
		require.NoError(t, m.SetReleaseYear(2020))
		require.NoError(t, m.SetPrice(30))
		require.NoError(t, m.SetInProgram(false))
		require.NoError(t, m.SetID(4))
		assert.Error(t, m.SetPrice(12000))
		assert.Error(t, m.SetReleaseYear(1900))
		assert.Error(t, m.SetTitle("T"))
		assert.Equal(t, uint32(30), m.Price())
		assert.Equal(t, "Tenet", m.Title())
		assert.Equal(t, "Inception", movie.Title(), "values are copied")
	})

	t.Run("csv round trip", func(t *testing.T) {
		line := movie.ToCSV()
		assert.Equal(t, `"3","Inception","2010","25","true"`, line)

		decoded, err := entities.MovieFromCSV(line)
		require.NoError(t, err)
		assert.Equal(t, movie, decoded)
	})

	t.Run("in program accepts only true and false", func(t *testing.T) {
		for _, token := range []string{"1", "T", "TRUE", "True", "yes"} {
			decoded, err := entities.MovieFromCSV(`"3","Inception","2010","25","` + token + `"`)
			require.NoError(t, err, token)
			assert.False(t, decoded.InProgram(), token)
		}
	})

	t.Run("csv defaults", func(t *testing.T) {
		decoded, err := entities.MovieFromCSV(`"8"`)
		require.NoError(t, err)
		assert.Equal(t, "placeholder", decoded.Title())
		assert.Equal(t, uint32(1926), decoded.ReleaseYear())
		assert.Equal(t, uint32(0), decoded.Price())
		assert.False(t, decoded.InProgram())
	})
}

func TestReservation(t *testing.T) {
	cardID := uint32(1)
	date := mustDate(t, 12, 3, 2024)

	withCard, err := entities.NewReservation(10, 3, &cardID, date, "18:30")
	require.NoError(t, err)

	cardID = 99
	got, ok := withCard.CardID()
	assert.True(t, ok)
	assert.Equal(t, uint32(1), got, "constructor copies the card id")

	walkIn, err := entities.NewReservation(11, 3, nil, date, "20.00")
	require.NoError(t, err)
	_, ok = walkIn.CardID()
	assert.False(t, ok)

	t.Run("bad hour", func(t *testing.T) {
		_, err := entities.NewReservation(12, 3, nil, date, "25:00")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hour must be from 0 to 23")
	})

	t.Run("csv round trip with card", func(t *testing.T) {
		line := withCard.ToCSV()
		assert.Equal(t, `"10","3","1","12.3.2024","18:30"`, line)

		decoded, err := entities.ReservationFromCSV(line)
		require.NoError(t, err)
		assert.Equal(t, withCard, decoded)
	})

	t.Run("csv round trip walk in", func(t *testing.T) {
		line := walkIn.ToCSV()
		assert.Equal(t, `"11","3","None","12.3.2024","20.00"`, line)

		decoded, err := entities.ReservationFromCSV(line)
		require.NoError(t, err)
		assert.Equal(t, walkIn, decoded)
	})

	t.Run("non numeric card token means walk in", func(t *testing.T) {
		decoded, err := entities.ReservationFromCSV(`"11","3","n/a","12.3.2024","20.00"`)
		require.NoError(t, err)
		_, ok := decoded.CardID()
		assert.False(t, ok)
	})

	t.Run("csv defaults", func(t *testing.T) {
		decoded, err := entities.ReservationFromCSV(`"4"`)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), decoded.MovieID())
		assert.Equal(t, entities.DefaultDate(), decoded.Date())
		assert.Equal(t, "00:00", decoded.Hour())
	})

	t.Run("setters", func(t *testing.T) {
		r := walkIn
		id := uint32(5)
		require.NoError(t, r.SetCardID(&id))
		require.NoError(t, r.SetHour("09:45"))
		require.NoError(t, r.SetMovieID(8))
		require.NoError(t, r.SetDate(mustDate(t, 1, 1, 2025)))
		require.NoError(t, r.SetID(20))
		assert.Error(t, r.SetHour("9:45"))

		got, ok := r.CardID()
		assert.True(t, ok)
		assert.Equal(t, uint32(5), got)
		assert.Equal(t, "09:45", r.Hour())

		require.NoError(t, r.SetCardID(nil))
		_, ok = r.CardID()
		assert.False(t, ok)
	})
}
