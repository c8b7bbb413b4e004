package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername_Lowercases(t *testing.T) {
	name, err := NormalizeUsername("  Antique-Fan ", 1)
	assert.NoError(t, err)
	assert.Equal(t, "antique-fan", name)
}

func TestNormalizeUsername_Empty(t *testing.T) {
	_, err := NormalizeUsername("   ", 1)
	assert.Equal(t, ErrUsernameEmpty, err)
}

func TestNormalizeUsername_TooLong(t *testing.T) {
	_, err := NormalizeUsername("thirteenchars", 1)
	assert.Equal(t, ErrUsernameTooLong, err)

	name, err := NormalizeUsername("twelve_chars", 1)
	assert.NoError(t, err)
	assert.Equal(t, "twelve_chars", name)
}

func TestNormalizeUsername_InvalidCharacters(t *testing.T) {
	for _, raw := range []string{"has space", "dots.here", "umlaut-ä", "semi;colon"} {
		_, err := NormalizeUsername(raw, 1)
		assert.Equal(t, ErrUsernameInvalid, err, raw)
	}
}

func TestNormalizeUsername_NumericReservedForOwnID(t *testing.T) {
	_, err := NormalizeUsername("42", 7)
	assert.Equal(t, ErrUsernameNumeric, err)

	name, err := NormalizeUsername("42", 42)
	assert.NoError(t, err)
	assert.Equal(t, "42", name)
}

func TestNormalizeUsername_AllowsDigitsMixedWithLetters(t *testing.T) {
	name, err := NormalizeUsername("clockfan99", 1)
	assert.NoError(t, err)
	assert.Equal(t, "clockfan99", name)
}
