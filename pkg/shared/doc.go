// Package shared holds the plumbing used across the Lunar Machine Sanctum
// SDK: Hedera network normalisation and client construction, operator key
// parsing, and configuration loading from the environment or a .env file.
//
// # Environment Variables
//
// LoadConfig reads SANCTUM_-prefixed variables (SANCTUM_APP_CODE,
// SANCTUM_TARGET_ADDRESS, SANCTUM_NETWORK, SANCTUM_GENAI_API_KEY, ...).
// The content-generation credential also falls back to GEMINI_API_KEY,
// GOOGLE_API_KEY and API_KEY. Operator credentials for Hedera use
// HEDERA_ACCOUNT_ID and HEDERA_PRIVATE_KEY, optionally scoped by network
// (TESTNET_HEDERA_ACCOUNT_ID, MAINNET_HEDERA_PRIVATE_KEY, ...).
//
// Variables already present in the process environment always win over
// values from .env.
package shared
