package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DateFormatDisplay", config.DateFormatDisplay},
		{"DefaultBookFile", config.DefaultBookFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneLength, "Phone numbers are exactly 10 digits")
	assert.Equal(t, 7, config.UpcomingWindowDays, "Birthday lookahead spans one week")
	assert.True(t, strings.HasSuffix(config.DefaultBookFile, config.ExtVCF),
		"Default store should be a vCard file")
}

// TestDateFormats verifies that the display layout round-trips DD.MM.YYYY.
func TestDateFormats(t *testing.T) {
	d, err := time.Parse(config.DateFormatDisplay, "15.06.2024")
	assert.NoError(t, err)
	assert.Equal(t, "15.06.2024", d.Format(config.DateFormatDisplay))
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 15, d.Day())
}

// TestUserMessages_Contract pins the exact wording the command layer reports.
// These strings are part of the user-visible contract and must not drift.
func TestUserMessages_Contract(t *testing.T) {
	assert.Equal(t, "Please provide both name and phone number.", config.MsgNeedNamePhone)
	assert.Equal(t, "Please provide name, old phone, and new phone.", config.MsgNeedChangeArgs)
	assert.Equal(t, "Please provide a contact name.", config.MsgNeedName)
	assert.Equal(t, "Please provide name and birthday (DD.MM.YYYY).", config.MsgNeedNameBirthday)
	assert.Equal(t, "Contact not found.", config.MsgContactNotFound)
	assert.Equal(t, "Invalid command.", config.MsgInvalidCommand)
}
