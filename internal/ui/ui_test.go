package ui_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/calendar"
	"github.com/tartampluch/go-contacts/internal/command"
	"github.com/tartampluch/go-contacts/internal/ui"
)

// MockRepository simulates the persistence gateway using `testify/mock`.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load() (*book.AddressBook, error) {
	args := m.Called()
	if b := args.Get(0); b != nil {
		return b.(*book.AddressBook), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Save(b *book.AddressBook) error {
	args := m.Called(b)
	return args.Error(0)
}

func newREPL(script string, repo *MockRepository) (*ui.REPL, *bytes.Buffer) {
	d := command.NewDispatcher(book.NewAddressBook(), book.RealClock{}, calendar.NewExporter())
	out := &bytes.Buffer{}
	repl := ui.NewREPL(strings.NewReader(script), out, d, repo)
	repl.SetupI18n("en")
	return repl, out
}

func TestREPL_Session(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Save", mock.Anything).Return(nil)

	script := "hello\nadd Ann 1234567890\nphone Ann\nbadcmd\n\nexit\n"
	repl, out := newREPL(script, repo)

	require.NoError(t, repl.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Welcome to the assistant bot!")
	assert.Contains(t, output, "Enter a command: ")
	assert.Contains(t, output, "How can I help you?")
	assert.Contains(t, output, "Contact added.")
	assert.Contains(t, output, "Ann: 1234567890")
	assert.Contains(t, output, "Invalid command.")
	assert.Contains(t, output, "Please enter a command.")
	assert.Contains(t, output, "Good bye!")

	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestREPL_EndOfInputSavesOnce(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Save", mock.Anything).Return(nil)

	// No exit command: the loop ends when input runs dry.
	repl, out := newREPL("add Ann 1234567890\n", repo)

	require.NoError(t, repl.Run(context.Background()))
	assert.Contains(t, out.String(), "Good bye!")
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestREPL_SaveFailureIsReported(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Save", mock.Anything).Return(errors.New("disk full"))

	repl, out := newREPL("exit\n", repo)

	err := repl.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, out.String(), "Could not save the address book. Check logs.")
}

func TestREPL_CancelledContextStopsLoop(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Save", mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repl, out := newREPL("hello\nhello\n", repo)

	require.NoError(t, repl.Run(ctx))
	assert.NotContains(t, out.String(), "How can I help you?",
		"No command should run after cancellation")
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestREPL_UkrainianSurface(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Save", mock.Anything).Return(nil)

	d := command.NewDispatcher(book.NewAddressBook(), book.RealClock{}, calendar.NewExporter())
	out := &bytes.Buffer{}
	repl := ui.NewREPL(strings.NewReader("exit\n"), out, d, repo)
	repl.SetupI18n("uk")

	require.NoError(t, repl.Run(context.Background()))
	assert.Contains(t, out.String(), "Вітаємо в боті-помічнику!")
	assert.Contains(t, out.String(), "До побачення!")
}
