package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record is one stored contact: a name, an ordered list of phones
// (duplicates permitted), and at most one birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with the given name and no phones or birthday.
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the contact's display name.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns the contact's phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	return r.phones
}

// AddPhone validates raw and appends it to the phone list.
// On validation failure the list is left unchanged.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// EditPhone replaces the first phone matching oldRaw with a validated
// newRaw. It returns ErrPhoneNotFound when no phone matches, or the
// validation error when newRaw is malformed; in both cases the list is
// left untouched.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	for i, phone := range r.phones {
		if phone.String() == oldRaw {
			replacement, err := NewPhone(newRaw)
			if err != nil {
				return err
			}
			r.phones[i] = replacement
			return nil
		}
	}
	return ErrPhoneNotFound
}

// FindPhone returns the first phone matching raw exactly,
// or ErrPhoneNotFound.
func (r *Record) FindPhone(raw string) (Phone, error) {
	for _, phone := range r.phones {
		if phone.String() == raw {
			return phone, nil
		}
	}
	return Phone{}, ErrPhoneNotFound
}

// AddBirthday validates raw and sets or overwrites the birthday.
// On validation failure any prior birthday is left unchanged.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// Birthday returns the contact's birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// PhoneList renders the phone numbers joined by "; ".
func (r *Record) PhoneList() string {
	values := make([]string, len(r.phones))
	for i, phone := range r.phones {
		values[i] = phone.String()
	}
	return strings.Join(values, config.PhoneSeparator)
}

// String renders the record as a single display line.
func (r *Record) String() string {
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.Name(), r.PhoneList())
	if r.birthday != nil {
		s += fmt.Sprintf(", birthday: %s", r.birthday.String())
	}
	return s
}
