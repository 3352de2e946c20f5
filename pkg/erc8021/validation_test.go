package erc8021

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAppCode(t *testing.T) {
	for _, code := range []string{"", "a", "lunar_sanctum", "café", strings.Repeat("z", MaxCodeLength)} {
		assert.NoError(t, ValidateAppCode(code), code)
	}
}

func TestValidateAppCodeTooLong(t *testing.T) {
	assert.ErrorIs(t, ValidateAppCode(strings.Repeat("z", MaxCodeLength+1)), ErrAppCodeTooLong)
}

func TestValidateAppCodeWideCharacters(t *testing.T) {
	for _, code := range []string{"€", "moon🌑", "Ā"} {
		assert.ErrorIs(t, ValidateAppCode(code), ErrInvalidAppCode, code)
	}
}

func TestValidateAppCodeCountsSurrogates(t *testing.T) {
	// Each emoji is two UTF-16 units, so 128 of them overflow the prefix.
	assert.ErrorIs(t, ValidateAppCode(strings.Repeat("🌑", 128)), ErrAppCodeTooLong)
}
