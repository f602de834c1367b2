package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// VCardRepository stores the address book as a stream of vCards in a
// single file. FN carries the contact name, TEL each phone in order, and
// BDAY the birthday as an ISO date. File order preserves book order.
type VCardRepository struct {
	Path string
}

// NewVCardRepository creates a repository backed by the file at path.
func NewVCardRepository(path string) *VCardRepository {
	return &VCardRepository{Path: path}
}

// Load reads and decodes the vCard file. A missing file yields a fresh
// empty book. Malformed cards and fields are skipped with a warning to
// maximize data recovery.
func (r *VCardRepository) Load() (*book.AddressBook, error) {
	b := book.NewAddressBook()

	f, err := os.Open(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
	}
	defer func() { _ = f.Close() }()

	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, r.Path,
	)

	decoder := vcard.NewDecoder(f)
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
		}

		name := card.Value(vcard.FieldFormattedName)
		if name == "" {
			log.Warn(config.MsgSkippedCard)
			continue
		}

		rec := book.NewRecord(name)
		for _, tel := range card.Values(vcard.FieldTelephone) {
			if err := rec.AddPhone(tel); err != nil {
				log.Warn(config.MsgSkippedCard,
					config.LogKeyName, name,
					config.LogKeyError, err,
				)
			}
		}

		if bday := card.Value(vcard.FieldBirthday); bday != "" {
			if err := setBirthday(rec, bday); err != nil {
				log.Warn(config.MsgSkippedBday,
					config.LogKeyName, name,
					config.LogKeyValue, bday,
				)
			}
		}

		b.AddRecord(rec)
	}

	log.Debug(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

// Save encodes the whole book and atomically replaces the file via a
// temp-file rename, so a crash mid-write never corrupts prior state.
func (r *VCardRepository) Save(b *book.AddressBook) error {
	var buf bytes.Buffer
	encoder := vcard.NewEncoder(&buf)

	for _, name := range b.Names() {
		rec, err := b.Find(name)
		if err != nil {
			return err
		}

		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, name)
		for _, phone := range rec.Phones() {
			card.AddValue(vcard.FieldTelephone, phone.String())
		}
		if birthday, ok := rec.Birthday(); ok {
			card.SetValue(vcard.FieldBirthday, birthday.Date().Format(config.DateFormatVCard))
		}
		vcard.ToV4(card)

		if err := encoder.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}

	slog.Debug(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, r.Path,
		config.LogKeyCount, b.Len(),
		config.LogKeySizeBytes, buf.Len(),
	)
	return nil
}

// setBirthday converts a persisted ISO date back into the display form
// the record API validates against.
func setBirthday(rec *book.Record, iso string) error {
	date, err := time.Parse(config.DateFormatVCard, iso)
	if err != nil {
		return err
	}
	return rec.AddBirthday(date.Format(config.DateFormatDisplay))
}
