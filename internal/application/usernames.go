package application

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const maxUsernameLength = 12

var (
	ErrUsernameTooLong    = errors.New("username must be at most 12 characters")
	ErrUsernameInvalid    = errors.New("username may only contain letters, digits, hyphens and underscores")
	ErrUsernameNumeric    = errors.New("numeric usernames are reserved for the matching account id")
	ErrUsernameEmpty      = errors.New("username must not be empty")
	usernamePattern       = regexp.MustCompile(`^[a-z0-9_-]+$`)
	usernameDigitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

// NormalizeUsername lowercases and validates a requested username. Purely
// numeric names are only allowed when they spell the user's own id, so
// profile URLs that fall back to ids stay unambiguous.
func NormalizeUsername(raw string, userID uint) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", ErrUsernameEmpty
	}
	if len(name) > maxUsernameLength {
		return "", ErrUsernameTooLong
	}
	if !usernamePattern.MatchString(name) {
		return "", ErrUsernameInvalid
	}
	if usernameDigitsPattern.MatchString(name) && name != strconv.FormatUint(uint64(userID), 10) {
		return "", ErrUsernameNumeric
	}
	return name, nil
}
