package book

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Name is a contact's display name, stored verbatim.
// It doubles as the exact-match lookup key inside an AddressBook,
// so no normalization or case folding is applied.
type Name struct {
	value string
}

// NewName wraps a raw display string. It never fails.
func NewName(raw string) Name {
	return Name{value: raw}
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number of exactly ten decimal digits.
// It is immutable once constructed; editing a phone means replacing it
// with a newly validated one.
type Phone struct {
	value string
}

// NewPhone validates raw and returns a Phone, or an *InvalidFormatError
// when raw is not exactly ten digits.
func NewPhone(raw string) (Phone, error) {
	if len(raw) != config.PhoneLength || !allDigits(raw) {
		return Phone{}, &InvalidFormatError{Reason: config.MsgPhoneFormat}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Birthday is a calendar date parsed from the DD.MM.YYYY pattern.
// It keeps both the original display string and the parsed date.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday parses raw as DD.MM.YYYY and returns a Birthday, or an
// *InvalidFormatError on a bad pattern or an impossible calendar date
// (time.Parse rejects e.g. 30.02.2024 with a day-out-of-range error).
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(config.DateFormatDisplay, raw)
	if err != nil {
		return Birthday{}, &InvalidFormatError{Reason: config.MsgBirthdayFormat}
	}
	return Birthday{value: raw, date: date}, nil
}

// String returns the original display string as supplied by the user.
func (b Birthday) String() string {
	return b.value
}

// Date returns the parsed calendar date.
func (b Birthday) Date() time.Time {
	return b.date
}

// Month returns the calendar month of the birthday.
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day returns the day of the month of the birthday.
func (b Birthday) Day() int {
	return b.date.Day()
}
