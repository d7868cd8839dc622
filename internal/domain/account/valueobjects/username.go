package valueobjects

import (
	"regexp"

	"warden/internal/shared/errors"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{4,30}$`)

// Username is a validated account login name: 4-30 characters, letters,
// digits and underscore only, unique across all roles.
type Username struct {
	value string
}

// NewUsername validates and wraps a login name.
func NewUsername(raw string) (*Username, error) {
	if !usernamePattern.MatchString(raw) {
		return nil, errors.NewInvalidUsernameError()
	}
	return &Username{value: raw}, nil
}

func (u *Username) String() string {
	return u.value
}

func (u *Username) Equals(other *Username) bool {
	return other != nil && u.value == other.value
}
