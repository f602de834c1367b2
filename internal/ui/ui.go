// Package ui runs the interactive read-eval-print loop and owns the
// localized surface strings around it. Command semantics live in the
// command package; this loop only reads lines, prints results, and saves
// the book once on the way out.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/command"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/storage"
)

// REPL reads commands from In, dispatches them, and writes every result
// to Out. One command runs to completion before the next line is read.
type REPL struct {
	In         io.Reader
	Out        io.Writer
	Dispatcher *command.Dispatcher
	Repo       storage.Repository

	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
}

// NewREPL wires a loop over the given dispatcher and repository.
func NewREPL(in io.Reader, out io.Writer, d *command.Dispatcher, repo storage.Repository) *REPL {
	return &REPL{
		In:         in,
		Out:        out,
		Dispatcher: d,
		Repo:       repo,
	}
}

// Run executes the loop until the exit command, end of input, or context
// cancellation, then saves the address book exactly once.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.Out, r.GetMsg(config.TKeyWelcome))

	scanner := bufio.NewScanner(r.In)
	for ctx.Err() == nil {
		fmt.Fprint(r.Out, r.GetMsg(config.TKeyPrompt))
		if !scanner.Scan() {
			break
		}

		result, exit := r.Dispatcher.Execute(scanner.Text())
		if exit {
			break
		}
		fmt.Fprintln(r.Out, result)
	}

	if err := ctx.Err(); err != nil {
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompRepl)
	}

	fmt.Fprintln(r.Out, r.GetMsg(config.TKeyGoodbye))

	if err := r.Repo.Save(r.Dispatcher.Book); err != nil {
		fmt.Fprintln(r.Out, r.GetMsg(config.TKeySaveError))
		slog.Error(config.ErrSaveFailed,
			config.LogKeyComponent, config.CompRepl,
			config.LogKeyError, err,
		)
		return err
	}

	slog.Info(config.MsgReplStop,
		config.LogKeyComponent, config.CompRepl,
		config.LogKeyCount, r.Dispatcher.Book.Len(),
	)
	return scanner.Err()
}
