package erc8021

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var markerBytes = mustDecodeHex(Marker)

func mustDecodeHex(value string) []byte {
	decoded, err := hex.DecodeString(value)
	if err != nil {
		panic(err)
	}
	return decoded
}

// SuffixBytes decodes a hex suffix into the bytes appended to calldata.
func SuffixBytes(suffixHex string) ([]byte, error) {
	if len(suffixHex)%2 != 0 {
		return nil, fmt.Errorf("%w: %d hex digits", ErrUnalignedSuffix, len(suffixHex))
	}
	decoded, err := hexutil.Decode("0x" + suffixHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode suffix: %w", err)
	}
	return decoded, nil
}

// HasMarker reports whether calldata ends with the ERC-8021 marker.
func HasMarker(calldata []byte) bool {
	return bytes.HasSuffix(calldata, markerBytes)
}

// AttributeCalldata returns a copy of calldata with the suffix for appCode
// appended.
func AttributeCalldata(calldata []byte, appCode string) ([]byte, error) {
	suffixHex, err := BuildSuffixStrict(appCode)
	if err != nil {
		return nil, err
	}
	suffix, err := SuffixBytes(suffixHex)
	if err != nil {
		return nil, err
	}

	attributed := make([]byte, 0, len(calldata)+len(suffix))
	attributed = append(attributed, calldata...)
	return append(attributed, suffix...), nil
}

// ExtractAttribution splits attributed calldata into its suffix and the
// functional payload preceding it.
//
// The length byte precedes the codes, so reading from the end is ambiguous:
// a code byte can equal a shorter length at the right offset. The longest
// candidate whose length byte matches and whose codes are printable ASCII is
// returned. A longer false match needs the payload to end in printable bytes
// and a code of at least 32 characters. When the expected code is known use
// ExtractAttributionFor, and use AttributionCandidates to see every reading.
func ExtractAttribution(calldata []byte) (*Suffix, []byte, bool) {
	candidates := AttributionCandidates(calldata)
	if len(candidates) == 0 {
		return nil, nil, false
	}
	suffix := candidates[0]
	return suffix, calldata[:len(calldata)-len(suffix.Hex)/2], true
}

// ExtractAttributionFor reports whether calldata ends with the suffix for
// appCode and returns the payload preceding it.
func ExtractAttributionFor(calldata []byte, appCode string) (*Suffix, []byte, bool) {
	suffixHex, err := BuildSuffixStrict(appCode)
	if err != nil {
		return nil, nil, false
	}
	suffix, err := SuffixBytes(suffixHex)
	if err != nil || !bytes.HasSuffix(calldata, suffix) {
		return nil, nil, false
	}

	return &Suffix{
		Length:   len(suffix) - MarkerSize - 2,
		AppCode:  appCode,
		SchemaID: SchemaCanonical,
		Hex:      suffixHex,
	}, calldata[:len(calldata)-len(suffix)], true
}

// AttributionCandidates returns every self-consistent schema 0 suffix at the
// end of calldata with printable codes, longest first.
func AttributionCandidates(calldata []byte) []*Suffix {
	if len(calldata) < MarkerSize+2 || !HasMarker(calldata) {
		return nil
	}

	schemaIndex := len(calldata) - MarkerSize - 1
	if SchemaID(calldata[schemaIndex]) != SchemaCanonical {
		return nil
	}

	var candidates []*Suffix
	for length := min(MaxCodeLength, schemaIndex-1); length >= 0; length-- {
		lengthIndex := schemaIndex - length - 1
		if int(calldata[lengthIndex]) != length {
			continue
		}
		codes := calldata[lengthIndex+1 : schemaIndex]
		if !isPrintable(codes) {
			continue
		}

		candidates = append(candidates, &Suffix{
			Length:   length,
			AppCode:  string(codes),
			SchemaID: SchemaCanonical,
			Hex:      hex.EncodeToString(calldata[lengthIndex:]),
		})
	}
	return candidates
}

func isPrintable(codes []byte) bool {
	for _, code := range codes {
		if code < 0x20 || code > 0x7e {
			return false
		}
	}
	return true
}
