package book

// AddressBook owns the mapping from contact name to Record.
// It preserves insertion order so that listings and the upcoming-birthday
// query are deterministic: an upsert keeps the original position, a delete
// followed by a re-add moves the record to the end.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord upserts the record under its name.
// Any existing record with the same name is replaced (last write wins).
func (b *AddressBook) AddRecord(record *Record) {
	name := record.Name()
	if _, exists := b.records[name]; !exists {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record stored under name, or ErrContactNotFound.
func (b *AddressBook) Find(name string) (*Record, error) {
	record, ok := b.records[name]
	if !ok {
		return nil, ErrContactNotFound
	}
	return record, nil
}

// Delete removes the record stored under name. Deleting an absent name
// is a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Names returns the contact names in insertion order.
func (b *AddressBook) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}
