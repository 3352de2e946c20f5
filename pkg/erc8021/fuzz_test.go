package erc8021

import (
	"strconv"
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func singleByteFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(
		func(s *string, c fuzz.Continue) {
			runes := make([]rune, c.Intn(MaxCodeLength+1))
			for index := range runes {
				runes[index] = rune(c.Intn(256))
			}
			*s = string(runes)
		},
	)
}

func printableFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(
		func(s *string, c fuzz.Continue) {
			runes := make([]rune, c.Intn(64))
			for index := range runes {
				runes[index] = rune(0x20 + c.Intn(0x5f))
			}
			*s = string(runes)
		},
		func(b *[]byte, c fuzz.Continue) {
			*b = make([]byte, 4+c.Intn(128))
			for index := range *b {
				(*b)[index] = byte(c.Intn(256))
			}
		},
	)
}

func TestFuzzSuffixStructure(t *testing.T) {
	f := singleByteFuzzer()
	for iteration := 0; iteration < 500; iteration++ {
		var code string
		f.Fuzz(&code)
		n := len([]rune(code))

		suffix := BuildSuffix(code)
		require.Len(t, suffix, 2+2*n+2+len(Marker))
		length, err := strconv.ParseUint(suffix[:2], 16, 8)
		require.NoError(t, err)
		require.Equal(t, n, int(length))
		require.True(t, strings.HasSuffix(suffix, Marker))

		parsed, ok := ParseSuffix(suffix)
		require.True(t, ok, "failed to parse suffix for %q", code)
		require.Equal(t, code, parsed.AppCode)
	}
}

func TestFuzzExtractAttributionForRecoversCode(t *testing.T) {
	f := printableFuzzer()
	for iteration := 0; iteration < 200; iteration++ {
		var code string
		var calldata []byte
		f.Fuzz(&code)
		f.Fuzz(&calldata)

		attributed, err := AttributeCalldata(calldata, code)
		require.NoError(t, err)

		suffix, payload, ok := ExtractAttributionFor(attributed, code)
		require.True(t, ok, "no attribution found for %q", code)
		require.Equal(t, code, suffix.AppCode)
		require.Equal(t, calldata, payload)

		found := false
		for _, candidate := range AttributionCandidates(attributed) {
			found = found || candidate.AppCode == code
		}
		require.True(t, found, "%q missing from candidates", code)
	}
}

func TestFuzzExtractAttributionAfterBinaryPayload(t *testing.T) {
	f := printableFuzzer()
	for iteration := 0; iteration < 200; iteration++ {
		var code string
		var calldata []byte
		f.Fuzz(&code)
		f.Fuzz(&calldata)
		// ABI encoded calldata ends in a padded word, never printable text.
		calldata[len(calldata)-1] = 0x00

		attributed, err := AttributeCalldata(calldata, code)
		require.NoError(t, err)

		suffix, payload, ok := ExtractAttribution(attributed)
		require.True(t, ok, "no attribution found for %q", code)
		require.Equal(t, code, suffix.AppCode)
		require.Equal(t, calldata, payload)
	}
}
