package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

func TestNewPhone_Valid(t *testing.T) {
	tests := []string{
		"1234567890",
		"0000000000",
		"9999999999",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			phone, err := book.NewPhone(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, phone.String(), "Phone must round-trip to its input")
		})
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Too short", "123456789"},
		{"Too long", "12345678901"},
		{"Contains letter", "12345678a0"},
		{"Contains dash", "123-456-78"},
		{"Contains space", "123 456 78"},
		{"Unicode digit lookalike", "１234567890"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := book.NewPhone(tt.raw)
			require.Error(t, err)

			var formatErr *book.InvalidFormatError
			assert.ErrorAs(t, err, &formatErr, "Validation failures must be InvalidFormatError")
		})
	}
}

func TestNewBirthday_Valid(t *testing.T) {
	birthday, err := book.NewBirthday("15.06.2024")
	require.NoError(t, err)

	assert.Equal(t, "15.06.2024", birthday.String(), "Original display string is preserved")
	assert.Equal(t, time.June, birthday.Month())
	assert.Equal(t, 15, birthday.Day())
	assert.Equal(t, 2024, birthday.Date().Year())
}

func TestNewBirthday_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Wrong separator", "15/06/2024"},
		{"ISO layout", "2024-06-15"},
		{"Feb 30 does not exist", "30.02.2024"},
		{"Feb 29 in non-leap year", "29.02.2023"},
		{"Day 31 in April", "31.04.2024"},
		{"Month 13", "01.13.2024"},
		{"Garbage", "not-a-date"},
		{"Empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := book.NewBirthday(tt.raw)
			require.Error(t, err)

			var formatErr *book.InvalidFormatError
			assert.ErrorAs(t, err, &formatErr)
			assert.Equal(t, "Invalid date format. Use DD.MM.YYYY", err.Error(),
				"Validation message is reported verbatim")
		})
	}
}

func TestNewName_Verbatim(t *testing.T) {
	// Names carry no validation: stored exactly as supplied, since they
	// serve as exact-match lookup keys.
	for _, raw := range []string{"Ann", "ann", "  Ann  ", "Анна", ""} {
		assert.Equal(t, raw, book.NewName(raw).String())
	}
}
