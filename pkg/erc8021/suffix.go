package erc8021

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// BuildSuffix encodes appCode as a schema 0 attribution suffix in lowercase
// hex without a 0x prefix.
//
// Each character contributes its UTF-16 code unit, zero-padded to two hex
// digits. Units above 0xff are written in full rather than masked, so the
// output matches existing attribution consumers byte for byte.
func BuildSuffix(appCode string) string {
	codeHex := encodeCodeUnits(appCode)
	return fmt.Sprintf("%02x%s%02x%s", len(codeHex)/2, codeHex, uint8(SchemaCanonical), Marker)
}

// BuildSuffixStrict validates appCode before encoding it.
func BuildSuffixStrict(appCode string) (string, error) {
	if err := ValidateAppCode(appCode); err != nil {
		return "", err
	}
	return BuildSuffix(appCode), nil
}

// ParseSuffix decomposes a suffix produced by BuildSuffix. A 0x prefix and
// upper-case digits are accepted.
func ParseSuffix(raw string) (*Suffix, bool) {
	candidate := strings.ToLower(strings.TrimSpace(raw))
	candidate = strings.TrimPrefix(candidate, "0x")
	if len(candidate) < 4+len(Marker) || !strings.HasSuffix(candidate, Marker) {
		return nil, false
	}

	length, err := strconv.ParseUint(candidate[:2], 16, 8)
	if err != nil {
		return nil, false
	}
	body := candidate[2 : len(candidate)-len(Marker)]
	codeEnd := int(length) * 2
	if len(body) != codeEnd+2 {
		return nil, false
	}

	codes, err := hex.DecodeString(body[:codeEnd])
	if err != nil {
		return nil, false
	}
	schema, err := strconv.ParseUint(body[codeEnd:], 16, 8)
	if err != nil || SchemaID(schema) != SchemaCanonical {
		return nil, false
	}

	return &Suffix{
		Length:   int(length),
		AppCode:  decodeCodes(codes),
		SchemaID: SchemaCanonical,
		Hex:      candidate,
	}, true
}

func encodeCodeUnits(value string) string {
	var builder strings.Builder
	for _, unit := range utf16.Encode([]rune(value)) {
		fmt.Fprintf(&builder, "%02x", unit)
	}
	return builder.String()
}

func decodeCodes(codes []byte) string {
	runes := make([]rune, len(codes))
	for index, code := range codes {
		runes[index] = rune(code)
	}
	return string(runes)
}
