package evm

import (
	"math/big"
	"strings"
)

type Chain struct {
	ID     uint64
	Name   string
	RPCURL string
}

var (
	Base     = Chain{ID: 8453, Name: "base", RPCURL: "https://mainnet.base.org"}
	Optimism = Chain{ID: 10, Name: "optimism", RPCURL: "https://mainnet.optimism.io"}
)

var supportedChains = []Chain{Base, Optimism}

// Chains returns the supported chains in display order.
func Chains() []Chain {
	return append([]Chain(nil), supportedChains...)
}

func ChainByID(id uint64) (Chain, bool) {
	for _, chain := range supportedChains {
		if chain.ID == id {
			return chain, true
		}
	}
	return Chain{}, false
}

func ChainByName(name string) (Chain, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, chain := range supportedChains {
		if chain.Name == normalized {
			return chain, true
		}
	}
	return Chain{}, false
}

// BigID returns the chain ID in the form go-ethereum signers expect.
func (c Chain) BigID() *big.Int {
	return new(big.Int).SetUint64(c.ID)
}
