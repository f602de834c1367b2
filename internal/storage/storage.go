// Package storage persists a whole address book to disk and loads it back.
//
// The gateway contract is all-or-nothing: Load yields either a complete
// prior book or a fresh empty one (a missing store is not an error), and
// Save replaces any prior persisted state in one operation.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Repository is the persistence gateway for an address book.
type Repository interface {
	// Load reads the persisted book. A missing store yields an empty book.
	Load() (*book.AddressBook, error)

	// Save durably replaces the persisted state with the given book.
	Save(b *book.AddressBook) error
}

// Open selects a backend by the file extension of path:
// .vcf/.vcard map to the vCard backend, .db/.sqlite/.sqlite3 to SQLite.
func Open(path string) (Repository, error) {
	if path == "" {
		return nil, errors.New(config.ErrStoragePath)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtVCF, config.ExtVCard:
		return NewVCardRepository(path), nil
	case config.ExtDB, config.ExtSQLite, config.ExtSQLite3:
		return NewSQLiteRepository(path), nil
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrStorageExt, filepath.Ext(path))
	}
}
