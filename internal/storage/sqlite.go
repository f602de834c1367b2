package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// SQLiteRepository stores the address book in a SQLite database with
// explicit position columns so book insertion order survives round trips.
type SQLiteRepository struct {
	Path string
}

// NewSQLiteRepository creates a repository backed by the database at path.
func NewSQLiteRepository(path string) *SQLiteRepository {
	return &SQLiteRepository{Path: path}
}

// Load reads the persisted book. A missing database file yields a fresh
// empty book without creating the file.
func (r *SQLiteRepository) Load() (*book.AddressBook, error) {
	b := book.NewAddressBook()

	if _, err := os.Stat(r.Path); errors.Is(err, os.ErrNotExist) {
		return b, nil
	}

	db, err := sql.Open(config.SQLiteDriver, r.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteOpen, err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(config.SQLSelectContacts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteLoad, err)
	}
	defer func() { _ = rows.Close() }()

	type contact struct {
		name     string
		birthday sql.NullString
	}
	var contacts []contact

	for rows.Next() {
		var c contact
		if err := rows.Scan(&c.name, &c.birthday); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrSQLiteLoad, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteLoad, err)
	}

	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, r.Path,
	)

	for _, c := range contacts {
		rec := book.NewRecord(c.name)

		phones, err := loadPhones(db, c.name)
		if err != nil {
			return nil, err
		}
		for _, phone := range phones {
			if err := rec.AddPhone(phone); err != nil {
				log.Warn(config.MsgSkippedCard,
					config.LogKeyName, c.name,
					config.LogKeyError, err,
				)
			}
		}

		if c.birthday.Valid && c.birthday.String != "" {
			if err := rec.AddBirthday(c.birthday.String); err != nil {
				log.Warn(config.MsgSkippedBday,
					config.LogKeyName, c.name,
					config.LogKeyValue, c.birthday.String,
				)
			}
		}

		b.AddRecord(rec)
	}

	log.Debug(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

func loadPhones(db *sql.DB, name string) ([]string, error) {
	rows, err := db.Query(config.SQLSelectPhones, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteLoad, err)
	}
	defer func() { _ = rows.Close() }()

	var phones []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrSQLiteLoad, err)
		}
		phones = append(phones, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteLoad, err)
	}
	return phones, nil
}

// Save rewrites both tables inside a single transaction, so a failure
// leaves the prior persisted state intact.
func (r *SQLiteRepository) Save(b *book.AddressBook) error {
	db, err := sql.Open(config.SQLiteDriver, r.Path)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSQLiteOpen, err)
	}
	defer func() { _ = db.Close() }()

	for _, stmt := range []string{config.SQLCreateContacts, config.SQLCreatePhones} {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSQLiteInit, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSQLiteSave, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{config.SQLDeletePhones, config.SQLDeleteContacts} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSQLiteSave, err)
		}
	}

	for pos, name := range b.Names() {
		rec, err := b.Find(name)
		if err != nil {
			return err
		}

		var birthday sql.NullString
		if bd, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: bd.String(), Valid: true}
		}

		if _, err := tx.Exec(config.SQLInsertContact, name, birthday, pos); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSQLiteSave, err)
		}

		for phonePos, phone := range rec.Phones() {
			if _, err := tx.Exec(config.SQLInsertPhone, name, phonePos, phone.String()); err != nil {
				return fmt.Errorf("%s: %w", config.ErrSQLiteSave, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSQLiteSave, err)
	}

	slog.Debug(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyPath, r.Path,
		config.LogKeyBackend, config.SQLiteDriver,
		config.LogKeyCount, b.Len(),
	)
	return nil
}
