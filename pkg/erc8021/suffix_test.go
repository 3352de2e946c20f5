package erc8021

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSuffixEmpty(t *testing.T) {
	assert.Equal(t, "000080218021802180218021802180218021", BuildSuffix(""))
}

func TestBuildSuffixSingleCharacter(t *testing.T) {
	assert.Equal(t, "01610080218021802180218021802180218021", BuildSuffix("a"))
}

func TestBuildSuffixAppCode(t *testing.T) {
	suffix := BuildSuffix("lunar_sanctum")
	assert.Equal(t, "0d6c756e61725f73616e6374756d0080218021802180218021802180218021", suffix)
	assert.Equal(t, "0d", suffix[:2])
	assert.Equal(t, "6c756e61725f73616e6374756d", suffix[2:2+26])
}

func TestBuildSuffixAlwaysEndsWithMarker(t *testing.T) {
	for _, code := range []string{"", "a", "lunar_sanctum", "é€😀", strings.Repeat("x", 300)} {
		assert.True(t, strings.HasSuffix(BuildSuffix(code), Marker), code)
	}
}

func TestBuildSuffixWideCharactersAreNotMasked(t *testing.T) {
	// é (0xe9), € (0x20ac) and 😀 (surrogates 0xd83d 0xde00) yield 14 digits.
	assert.Equal(t, "07e920acd83dde000080218021802180218021802180218021", BuildSuffix("é€😀"))
}

func TestBuildSuffixLengthDoesNotWrap(t *testing.T) {
	assert.True(t, strings.HasPrefix(BuildSuffix(strings.Repeat("a", 256)), "100"))
}

func TestBuildSuffixLowercase(t *testing.T) {
	suffix := BuildSuffix("ZZ~")
	assert.Equal(t, strings.ToLower(suffix), suffix)
}

func TestBuildSuffixStrict(t *testing.T) {
	suffix, err := BuildSuffixStrict("lunar_sanctum")
	require.NoError(t, err)
	assert.Equal(t, BuildSuffix("lunar_sanctum"), suffix)

	_, err = BuildSuffixStrict("€")
	assert.ErrorIs(t, err, ErrInvalidAppCode)
}

func TestParseSuffix(t *testing.T) {
	parsed, ok := ParseSuffix(BuildSuffix("lunar_sanctum"))
	require.True(t, ok)
	assert.Equal(t, 13, parsed.Length)
	assert.Equal(t, "lunar_sanctum", parsed.AppCode)
	assert.Equal(t, SchemaCanonical, parsed.SchemaID)
}

func TestParseSuffixAcceptsPrefixAndUppercase(t *testing.T) {
	parsed, ok := ParseSuffix("0x" + strings.ToUpper(BuildSuffix("a")))
	require.True(t, ok)
	assert.Equal(t, "a", parsed.AppCode)
}

func TestParseSuffixEmptyCode(t *testing.T) {
	parsed, ok := ParseSuffix(BuildSuffix(""))
	require.True(t, ok)
	assert.Zero(t, parsed.Length)
	assert.Empty(t, parsed.AppCode)
}

func TestParseSuffixRejectsMalformed(t *testing.T) {
	valid := BuildSuffix("abc")
	cases := map[string]string{
		"empty":          "",
		"marker only":    Marker,
		"wrong marker":   strings.TrimSuffix(valid, Marker) + strings.Repeat("80", 16),
		"wrong schema":   "0361626301" + Marker,
		"length too big": "0461626300" + Marker,
		"length short":   "0261626300" + Marker,
		"not hex":        "03zz626300" + Marker,
		"odd digits":     BuildSuffix("Ā"),
	}
	for name, raw := range cases {
		_, ok := ParseSuffix(raw)
		assert.False(t, ok, name)
	}
}

func TestSuffixDecomposition(t *testing.T) {
	for _, code := range []string{"", "a", "lunar_sanctum", "base.app/sanctum"} {
		suffix := BuildSuffix(code)
		length, err := strconv.ParseUint(suffix[:2], 16, 8)
		require.NoError(t, err, code)

		n := int(length)
		assert.Equal(t, len(code), n, code)
		assert.Equal(t, "00", suffix[2+2*n:2+2*n+2], code)
		assert.Equal(t, Marker, suffix[2+2*n+2:], code)
	}
}

func TestParseSuffixWideCodeDesynchronises(t *testing.T) {
	// € encodes as 20ac, which reads back as two single-byte codes.
	parsed, ok := ParseSuffix(BuildSuffix("€"))
	require.True(t, ok)
	assert.NotEqual(t, "€", parsed.AppCode)
	assert.Equal(t, 2, parsed.Length)
}
