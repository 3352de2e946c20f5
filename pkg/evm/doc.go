// Package evm applies ERC-8021 attribution to EVM transactions on the chains
// the Sanctum mini-app connects to (Base and Optimism). It builds and signs
// EIP-1559 transactions whose calldata carries the attribution suffix and
// provides the address helpers used to display the connected wallet.
//
// Submitting transactions is left to the caller's wallet or RPC client.
package evm
