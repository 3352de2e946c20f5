// The Lunar Machine Sanctum SDK for Go builds and reads ERC-8021 transaction
// attribution and runs the Lunar Machine Sanctum stage model behind the
// sanctum dapp.
//
// # Packages
//
//   - erc8021: schema 0 attribution suffixes, calldata attribution and
//     attributed Hedera contract calls
//   - evm: attributed EIP-1559 transactions for Base and Optimism
//   - mirror: Hedera mirror node contract results
//   - lore: GenAI-backed archive log generation with offline fallback
//   - sanctum: ring puzzles, session status and the lore log
//   - shared: network selection, .env discovery and configuration
//
// ERC-8021: https://eips.ethereum.org/EIPS/eip-8021
//
// # Installation
//
//	go get github.com/lunar-sanctum/sanctum-sdk-go@latest
package sanctum_sdk_go
