package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app data and cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagData         = "data"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescData     = "Path to the address book file (.vcf or .sqlite3)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Command Tokens
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdExport       = "export"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Data Formats & Business Logic
// -----------------------------------------------------------------------------

const (
	// DateFormatDisplay is the user-facing birthday layout (DD.MM.YYYY).
	DateFormatDisplay = "02.01.2006"

	// DateFormatVCard is the BDAY layout used in the persisted vCard file.
	DateFormatVCard = "2006-01-02"

	// PhoneLength is the exact number of digits a phone number must have.
	PhoneLength = 10

	// UpcomingWindowDays is the inclusive width of the birthday lookahead.
	UpcomingWindowDays = 7

	PhoneSeparator = "; "
)

// -----------------------------------------------------------------------------
// Persistence: Files & SQLite
// -----------------------------------------------------------------------------

const (
	DefaultBookFile = "addressbook.vcf"

	ExtVCF     = ".vcf"
	ExtVCard   = ".vcard"
	ExtDB      = ".db"
	ExtSQLite  = ".sqlite"
	ExtSQLite3 = ".sqlite3"

	SQLiteDriver = "sqlite3"

	SQLCreateContacts = `CREATE TABLE IF NOT EXISTS contacts (
		name TEXT PRIMARY KEY,
		birthday TEXT,
		position INTEGER NOT NULL
	)`
	SQLCreatePhones = `CREATE TABLE IF NOT EXISTS phones (
		contact TEXT NOT NULL,
		position INTEGER NOT NULL,
		value TEXT NOT NULL
	)`
	SQLDeleteContacts = `DELETE FROM contacts`
	SQLDeletePhones   = `DELETE FROM phones`
	SQLInsertContact  = `INSERT INTO contacts (name, birthday, position) VALUES (?, ?, ?)`
	SQLInsertPhone    = `INSERT INTO phones (contact, position, value) VALUES (?, ?, ?)`
	SQLSelectContacts = `SELECT name, birthday FROM contacts ORDER BY position`
	SQLSelectPhones   = `SELECT value FROM phones WHERE contact = ? ORDER BY position`
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Export//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// UID Generation
	UIDSalt         = "go-contacts-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	FormatEvtSummary = "Birthday: %s"

	// StubVCalendar is the minimal valid iCalendar object emitted when the
	// book holds no birthdays, so subscribers never see an invalid feed.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// User-Facing Messages (Command Results)
// -----------------------------------------------------------------------------

const (
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgPhoneUpdated    = "Phone number updated."
	MsgBirthdayAdded   = "Birthday added for %s."
	MsgHelp            = "How can I help you?"
	MsgNoContacts      = "No contacts found."
	MsgNoUpcoming      = "No upcoming birthdays in the next week."
	MsgCongratulate    = "Congratulate %s on %s"
	MsgShowPhones      = "%s: %s"
	MsgShowBirthday    = "%s's birthday: %s"
	MsgNoBirthdaySet   = "%s has no birthday set."
	MsgExported        = "Calendar exported to %s."
	MsgInvalidCommand  = "Invalid command."
	MsgNoCommand       = "Please enter a command."
	MsgContactNotFound = "Contact not found."
	MsgPhoneNotFound   = "Phone number not found."
	MsgUnexpectedError = "Unexpected error: %v"
)

// -----------------------------------------------------------------------------
// User-Facing Messages (Arity Hints)
// -----------------------------------------------------------------------------

const (
	MsgNeedNamePhone    = "Please provide both name and phone number."
	MsgNeedPhone        = "Please provide a phone number."
	MsgNeedChangeArgs   = "Please provide name, old phone, and new phone."
	MsgNeedName         = "Please provide a contact name."
	MsgNeedNameBirthday = "Please provide name and birthday (DD.MM.YYYY)."
	MsgNeedExportPath   = "Please provide an output file path (.ics)."
)

// -----------------------------------------------------------------------------
// Validation Errors (Reported Verbatim)
// -----------------------------------------------------------------------------

const (
	MsgPhoneFormat    = "Phone number must be exactly 10 digits and contain only numbers."
	MsgBirthdayFormat = "Invalid date format. Use DD.MM.YYYY"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrStorageExt    = "storage error: unsupported file extension"
	ErrStoragePath   = "storage error: data path is empty"
	ErrVCardDecode   = "failed to decode vCard stream"
	ErrVCardEncode   = "failed to encode vCard stream"
	ErrSQLiteOpen    = "failed to open sqlite database"
	ErrSQLiteInit    = "failed to initialize sqlite schema"
	ErrSQLiteSave    = "failed to save address book to sqlite"
	ErrSQLiteLoad    = "failed to load address book from sqlite"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrExportWrite   = "failed to write calendar file"
	ErrSaveFailed    = "failed to save address book"
	ErrLoadFailed    = "failed to load address book, starting empty"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrDataDir       = "could not determine user config dir"
	ErrCreateDir     = "could not create app directory"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgCommandRun    = "Command dispatched"
	MsgExportDone    = "Calendar export finished"
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgReplStop      = "REPL loop finished"
	MsgCtxCancel     = "Context cancelled, shutting down"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedBday   = "Skipping unparsable birthday"
)

// -----------------------------------------------------------------------------
// REPL Surface Fallbacks (used when no locale is loaded)
// -----------------------------------------------------------------------------

const (
	FallbackWelcome   = "Welcome to the assistant bot!"
	FallbackPrompt    = "Enter a command: "
	FallbackGoodbye   = "Good bye!"
	FallbackSaveError = "Could not save the address book. Check logs."
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome   = "repl_welcome"
	TKeyPrompt    = "repl_prompt"
	TKeyGoodbye   = "repl_goodbye"
	TKeySaveError = "repl_save_error"
)

// DefaultLanguage is the fallback REPL surface language (ISO 639-1).
const DefaultLanguage = "en"

// EnvLanguage selects the REPL surface language (e.g. "en", "uk").
const EnvLanguage = "GO_CONTACTS_LANG"

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPath      = "path"
	LogKeyBackend   = "backend"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeySizeBytes = "size_bytes"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompBook     = "book"
	CompCommand  = "command"
	CompStorage  = "storage"
	CompCalendar = "calendar"
	CompRepl     = "repl"
	CompI18n     = "i18n"
)
