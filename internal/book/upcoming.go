package book

import (
	"math"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Upcoming pairs a contact name with the date on which to congratulate them.
// It is derived on demand and never persisted.
type Upcoming struct {
	Name           string
	Congratulation time.Time
}

// CongratulationDisplay formats the congratulation date as DD.MM.YYYY.
func (u Upcoming) CongratulationDisplay() string {
	return u.Congratulation.Format(config.DateFormatDisplay)
}

// UpcomingBirthdays returns, in book insertion order, every contact whose
// next birthday occurrence falls within the inclusive week window starting
// at today. Occurrences landing on a Saturday or Sunday are congratulated
// on the following Monday.
//
// A Feb 29 birthday in a non-leap target year resolves to March 1 through
// time.Date normalization.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Upcoming {
	loc := today.Location()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	var upcoming []Upcoming
	for _, name := range b.order {
		birthday, ok := b.records[name].Birthday()
		if !ok {
			continue
		}

		candidate := time.Date(todayStart.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
		if candidate.Before(todayStart) {
			// Already passed this year, next occurrence is next year.
			candidate = time.Date(todayStart.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
		}

		// Rounding absorbs the one-hour skew a DST transition introduces
		// between two local midnights.
		days := int(math.Round(candidate.Sub(todayStart).Hours() / 24))
		if days < 0 || days > config.UpcomingWindowDays {
			continue
		}

		congratulation := candidate
		switch candidate.Weekday() {
		case time.Saturday:
			congratulation = candidate.AddDate(0, 0, 2)
		case time.Sunday:
			congratulation = candidate.AddDate(0, 0, 1)
		}

		upcoming = append(upcoming, Upcoming{
			Name:           name,
			Congratulation: congratulation,
		})
	}
	return upcoming
}
