package book

import "errors"

// InvalidFormatError reports a field value that failed its validation rule.
// The Reason is the exact text shown to the user, so construction sites
// use the centralized message constants.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return e.Reason
}

// Lookup sentinels. These are normal, recoverable outcomes: the command
// layer maps them to plain user-facing messages and never lets them escape.
var (
	ErrContactNotFound = errors.New("contact not found")
	ErrPhoneNotFound   = errors.New("phone number not found")
)
