package shared

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsEVMAddress reports whether address is a 0x-prefixed 20-byte hex address.
// Surrounding whitespace is ignored.
func IsEVMAddress(address string) bool {
	trimmed := strings.TrimSpace(address)
	return strings.HasPrefix(trimmed, "0x") && common.IsHexAddress(trimmed)
}

// ChecksumEVMAddress returns the EIP-55 form of an address accepted by
// IsEVMAddress.
func ChecksumEVMAddress(address string) string {
	return common.HexToAddress(strings.TrimSpace(address)).Hex()
}
