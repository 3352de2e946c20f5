package evm

import "errors"

var (
	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrInvalidAddress   = errors.New("invalid EVM address")
	ErrInvalidPublicKey = errors.New("invalid secp256k1 public key")
)
