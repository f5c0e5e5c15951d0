package models

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxUsernameLength is the longest display name accepted, in characters
const MaxUsernameLength = 20

// ErrInvalidUsername is returned for empty or over-long display names
var ErrInvalidUsername = errors.New("username must be 1 to 20 characters")

// PlayerIdentity is the stable per-device player record
type PlayerIdentity struct {
	// PlayerID is generated once and never changes
	PlayerID string

	// Username is the display name chosen by the player
	Username string
}

// NormalizeUsername trims a display name and checks its length
func NormalizeUsername(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxUsernameLength {
		return "", ErrInvalidUsername
	}
	return name, nil
}
