package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// HandlerFunc executes one command against the dispatcher's address book.
// It returns the display string on success or a typed error that the
// dispatcher normalizes into user-facing text.
type HandlerFunc func(d *Dispatcher, args []string) (string, error)

// Spec is the static per-command metadata consulted before a handler runs.
type Spec struct {
	// MinArgs is the minimum number of positional arguments required.
	MinArgs int

	// Hints holds the arity messages indexed by the number of arguments
	// actually provided; len(Hints) == MinArgs. The "add" command, for
	// example, asks for both fields at zero args but only the phone at one.
	Hints []string

	Handler HandlerFunc
}

// CalendarExporter writes the book's birthdays as an iCalendar file.
// The interface keeps the dispatcher decoupled from the export
// implementation and mockable in tests.
type CalendarExporter interface {
	Export(b *book.AddressBook, path string, now time.Time) error
}

// Dispatcher parses input lines, enforces arity, invokes handlers, and
// converts every failure into a displayable string. Nothing propagates
// past Execute.
type Dispatcher struct {
	Book     *book.AddressBook
	Clock    book.Clock
	Exporter CalendarExporter

	specs map[string]Spec
}

// NewDispatcher wires a dispatcher over the given book.
func NewDispatcher(b *book.AddressBook, clock book.Clock, exporter CalendarExporter) *Dispatcher {
	d := &Dispatcher{
		Book:     b,
		Clock:    clock,
		Exporter: exporter,
	}
	d.specs = map[string]Spec{
		config.CmdHello: {Handler: handleHello},
		config.CmdAdd: {
			MinArgs: 2,
			Hints:   []string{config.MsgNeedNamePhone, config.MsgNeedPhone},
			Handler: handleAdd,
		},
		config.CmdChange: {
			MinArgs: 3,
			Hints:   []string{config.MsgNeedChangeArgs, config.MsgNeedChangeArgs, config.MsgNeedChangeArgs},
			Handler: handleChange,
		},
		config.CmdPhone: {
			MinArgs: 1,
			Hints:   []string{config.MsgNeedName},
			Handler: handlePhone,
		},
		config.CmdAll: {Handler: handleAll},
		config.CmdAddBirthday: {
			MinArgs: 2,
			Hints:   []string{config.MsgNeedNameBirthday, config.MsgNeedNameBirthday},
			Handler: handleAddBirthday,
		},
		config.CmdShowBirthday: {
			MinArgs: 1,
			Hints:   []string{config.MsgNeedName},
			Handler: handleShowBirthday,
		},
		config.CmdBirthdays: {Handler: handleBirthdays},
		config.CmdExport: {
			MinArgs: 1,
			Hints:   []string{config.MsgNeedExportPath},
			Handler: handleExport,
		},
	}
	return d
}

// Parse splits an input line into a lowercased command token and verbatim
// positional arguments. A blank or whitespace-only line yields an empty
// command and no arguments.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Execute runs one input line to completion and returns the display
// string plus an exit flag set only by the close/exit command.
func (d *Dispatcher) Execute(line string) (string, bool) {
	cmd, args := Parse(line)
	if cmd == "" {
		return config.MsgNoCommand, false
	}

	if cmd == config.CmdClose || cmd == config.CmdExit {
		return "", true
	}

	spec, ok := d.specs[cmd]
	if !ok {
		return config.MsgInvalidCommand, false
	}

	if len(args) < spec.MinArgs {
		return spec.Hints[len(args)], false
	}

	start := time.Now()
	result, err := spec.Handler(d, args)

	slog.Debug(config.MsgCommandRun,
		config.LogKeyComponent, config.CompCommand,
		config.LogKeyCommand, cmd,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)

	if err != nil {
		return normalize(err), false
	}
	return result, false
}

// normalize maps the error taxonomy to user-facing text. Validation
// failures carry their message verbatim; lookups become plain phrases;
// anything else gets the generic prefix.
func normalize(err error) string {
	var formatErr *book.InvalidFormatError
	switch {
	case errors.As(err, &formatErr):
		return formatErr.Reason
	case errors.Is(err, book.ErrContactNotFound):
		return config.MsgContactNotFound
	case errors.Is(err, book.ErrPhoneNotFound):
		return config.MsgPhoneNotFound
	default:
		return fmt.Sprintf(config.MsgUnexpectedError, err)
	}
}
