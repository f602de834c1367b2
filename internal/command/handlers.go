package command

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

func handleHello(_ *Dispatcher, _ []string) (string, error) {
	return config.MsgHelp, nil
}

// handleAdd creates the contact when absent, then appends the phone.
// The record stays in the book even if the phone fails validation, so a
// retry with a corrected number updates rather than re-adds.
func handleAdd(d *Dispatcher, args []string) (string, error) {
	name, phone := args[0], args[1]

	message := config.MsgContactUpdated
	rec, err := d.Book.Find(name)
	if err != nil {
		rec = book.NewRecord(name)
		d.Book.AddRecord(rec)
		message = config.MsgContactAdded
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return message, nil
}

func handleChange(d *Dispatcher, args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, err := d.Book.Find(name)
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return config.MsgPhoneUpdated, nil
}

func handlePhone(d *Dispatcher, args []string) (string, error) {
	name := args[0]

	rec, err := d.Book.Find(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(config.MsgShowPhones, name, rec.PhoneList()), nil
}

func handleAll(d *Dispatcher, _ []string) (string, error) {
	if d.Book.Len() == 0 {
		return config.MsgNoContacts, nil
	}

	lines := make([]string, 0, d.Book.Len())
	for _, name := range d.Book.Names() {
		rec, err := d.Book.Find(name)
		if err != nil {
			return "", err
		}
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

func handleAddBirthday(d *Dispatcher, args []string) (string, error) {
	name, birthday := args[0], args[1]

	rec, err := d.Book.Find(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf(config.MsgBirthdayAdded, name), nil
}

func handleShowBirthday(d *Dispatcher, args []string) (string, error) {
	name := args[0]

	rec, err := d.Book.Find(name)
	if err != nil {
		return "", err
	}

	birthday, ok := rec.Birthday()
	if !ok {
		return fmt.Sprintf(config.MsgNoBirthdaySet, name), nil
	}
	return fmt.Sprintf(config.MsgShowBirthday, name, birthday.String()), nil
}

func handleBirthdays(d *Dispatcher, _ []string) (string, error) {
	upcoming := d.Book.UpcomingBirthdays(d.Clock.Now())
	if len(upcoming) == 0 {
		return config.MsgNoUpcoming, nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		lines = append(lines, fmt.Sprintf(config.MsgCongratulate, u.Name, u.CongratulationDisplay()))
	}
	return strings.Join(lines, "\n"), nil
}

func handleExport(d *Dispatcher, args []string) (string, error) {
	path := args[0]

	if err := d.Exporter.Export(d.Book, path, d.Clock.Now()); err != nil {
		return "", err
	}
	return fmt.Sprintf(config.MsgExported, path), nil
}
