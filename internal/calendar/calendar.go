package calendar

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Exporter renders an address book's birthdays as an iCalendar file so
// they can be imported into any calendar application.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export encodes the book's birthdays and writes them to path.
func (e *Exporter) Export(b *book.AddressBook, path string, now time.Time) error {
	data, err := e.Encode(b, now)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyPath, path,
		config.LogKeySizeBytes, len(data),
	)
	return nil
}

// Encode builds the iCalendar object. For every contact with a birthday it
// emits one all-day event per year for the previous, current, and next
// year, so calendar clients stay populated when scrolling without an
// immediate re-export. No event is generated before the person is born.
func (e *Exporter) Encode(b *book.AddressBook, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	loc := now.Location()
	targetYears := []int{now.Year() - 1, now.Year(), now.Year() + 1}

	count := 0
	for _, name := range b.Names() {
		rec, err := b.Find(name)
		if err != nil {
			continue
		}
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}

		uidBase := eventUID(name, birthday.Date())

		for _, year := range targetYears {
			if year < birthday.Date().Year() {
				continue
			}

			event := ical.NewEvent()
			event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, year, config.ICalDomain))
			event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatEvtSummary, name))

			dtStartProp := ical.NewProp(config.PropDTStart)
			dtStartProp.SetDate(time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc))
			event.Props.Set(dtStartProp)

			event.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, event.Component)
			count++
		}
	}

	// A calendar without components is invalid, so fall back to the stub.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExportDone,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyCount, count,
	)
	return buf.Bytes(), nil
}

// eventUID derives a deterministic identifier so repeated exports produce
// stable UIDs across files.
func eventUID(name string, dateOfBirth time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, dateOfBirth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
