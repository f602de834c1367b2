package calendar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/calendar"
)

func bookWith(t *testing.T, name, birthday string) *book.AddressBook {
	t.Helper()
	b := book.NewAddressBook()
	rec := book.NewRecord(name)
	require.NoError(t, rec.AddBirthday(birthday))
	b.AddRecord(rec)
	return b
}

func TestEncode_GeneratesYearRange(t *testing.T) {
	// Born 1990-12-31, now Jan 1st 2025: events for 2024, 2025, 2026.
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := bookWith(t, "Range Test", "31.12.1990")

	data, err := calendar.NewExporter().Encode(b, now)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Birthday: Range Test")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20241231", "Should include previous year")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20251231", "Should include current year")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20261231", "Should include next year")
	assert.Equal(t, 3, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestEncode_NoEventBeforeBirth(t *testing.T) {
	// Born 2025-05-01, now Jan 1st 2025: 2024 is skipped.
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := bookWith(t, "Baby", "01.05.2025")

	data, err := calendar.NewExporter().Encode(b, now)
	require.NoError(t, err)

	ics := string(data)
	assert.NotContains(t, ics, "DTSTART;VALUE=DATE:20240501", "No event before the person is born")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250501")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260501")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
}

func TestEncode_EmptyBookProducesValidStub(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, b := range []*book.AddressBook{
		book.NewAddressBook(),
		func() *book.AddressBook {
			// A record without a birthday contributes nothing.
			b := book.NewAddressBook()
			b.AddRecord(book.NewRecord("No Birthday"))
			return b
		}(),
	} {
		data, err := calendar.NewExporter().Encode(b, now)
		require.NoError(t, err)

		ics := string(data)
		assert.Contains(t, ics, "BEGIN:VCALENDAR")
		assert.Contains(t, ics, "END:VCALENDAR")
		assert.NotContains(t, ics, "BEGIN:VEVENT")
	}
}

func TestEncode_StableUIDs(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := bookWith(t, "Ann", "15.06.1990")

	first, err := calendar.NewExporter().Encode(b, now)
	require.NoError(t, err)
	second, err := calendar.NewExporter().Encode(b, now)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "Repeated exports must be byte-identical")
}

func TestExport_WritesFile(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "birthdays.ics")

	err := calendar.NewExporter().Export(bookWith(t, "Ann", "15.06.1990"), path, now)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "SUMMARY:Birthday: Ann")
}
