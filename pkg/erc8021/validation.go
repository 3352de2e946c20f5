package erc8021

import (
	"fmt"
	"unicode/utf16"
)

// ValidateAppCode reports whether appCode encodes to a byte-aligned suffix
// whose length fits the one-byte prefix.
func ValidateAppCode(appCode string) error {
	units := utf16.Encode([]rune(appCode))
	if len(units) > MaxCodeLength {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrAppCodeTooLong, len(units), MaxCodeLength)
	}
	for index, unit := range units {
		if unit > 0xff {
			return fmt.Errorf(
				"%w: code unit 0x%04x at position %d does not fit in one byte",
				ErrInvalidAppCode,
				unit,
				index,
			)
		}
	}
	return nil
}
