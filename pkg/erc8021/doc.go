// Package erc8021 implements ERC-8021 transaction attribution for schema 0
// (the canonical code registry). It builds the hexadecimal data suffix that
// a wallet appends to transaction calldata, parses suffixes back out of hex
// strings and raw calldata, and attributes Hedera EVM contract calls.
//
// # Suffix layout
//
// A schema 0 suffix is the concatenation of
//
//	codesLength (1 byte) | codes (codesLength bytes) | schemaId (1 byte) | ercSuffix (16 bytes)
//
// where ercSuffix is the fixed marker 0x8021 repeated eight times.
//
// # Building a suffix
//
//	suffix := erc8021.BuildSuffix("lunar_sanctum")
//	// 0d6c756e61725f73616e6374756d0080218021802180218021802180218021
//
// BuildSuffix never fails and reproduces the encoding used by deployed
// attribution consumers, including for characters outside the single-byte
// range. Use BuildSuffixStrict or ValidateAppCode to reject such codes.
package erc8021
