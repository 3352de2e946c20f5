package evm

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/shared"
)

// ValidateAddress requires a 0x-prefixed 20-byte hex address.
func ValidateAddress(address string) error {
	if !shared.IsEVMAddress(address) {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return nil
}

// ChecksumAddress returns the EIP-55 form of address.
func ChecksumAddress(address string) (string, error) {
	if err := ValidateAddress(address); err != nil {
		return "", err
	}
	return shared.ChecksumEVMAddress(address), nil
}

// ShortAddress abbreviates an address for display as 0x1234...abcd.
func ShortAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if len(trimmed) <= 10 {
		return trimmed
	}
	return trimmed[:6] + "..." + trimmed[len(trimmed)-4:]
}

// AddressFromPublicKey derives the EVM address of a compressed (33 byte) or
// uncompressed (65 byte) secp256k1 public key, such as a Hedera ECDSA key.
func AddressFromPublicKey(publicKeyHex string) (common.Address, error) {
	trimmed := strings.TrimSpace(publicKeyHex)
	if !strings.HasPrefix(trimmed, "0x") {
		trimmed = "0x" + trimmed
	}
	raw, err := hexutil.Decode(trimmed)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	publicKey, err := btcec.ParsePubKey(raw)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	uncompressed := publicKey.SerializeUncompressed()
	return common.BytesToAddress(crypto.Keccak256(uncompressed[1:])[12:]), nil
}

// AddressFromPrivateKey derives the EVM address of a hex secp256k1 private key.
func AddressFromPrivateKey(privateKeyHex string) (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid private key: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}
