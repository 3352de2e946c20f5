package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

var (
	accountIDKeys  = []string{"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "OPERATOR_ID"}
	privateKeyKeys = []string{"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "OPERATOR_KEY"}
)

// OperatorConfigFromEnv reads Hedera operator credentials. Network scoped
// variables such as TESTNET_HEDERA_ACCOUNT_ID take precedence over the
// unscoped ones.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network, err := NormalizeNetwork(firstNonEmptyEnv("SANCTUM_NETWORK", "HEDERA_NETWORK"))
	if err != nil {
		return OperatorConfig{}, err
	}

	accountID := firstNonEmptyEnv(scopedKeys(network, accountIDKeys)...)
	if accountID == "" {
		accountID = firstNonEmptyEnv(accountIDKeys...)
	}
	privateKey := firstNonEmptyEnv(scopedKeys(network, privateKeyKeys)...)
	if privateKey == "" {
		privateKey = firstNonEmptyEnv(privateKeyKeys...)
	}

	if accountID == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
	}, nil
}

func scopedKeys(network string, keys []string) []string {
	prefix := strings.ToUpper(network) + "_"
	scoped := make([]string, len(keys))
	for index, key := range keys {
		scoped[index] = prefix + key
	}
	return scoped
}

// ParsePrivateKey parses a DER or raw hex Hedera private key, trying ED25519,
// ECDSA(secp256k1) and the SDK's generic parser in that order.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	parsers := []struct {
		name  string
		parse func(string) (hedera.PrivateKey, error)
	}{
		{"ED25519", hedera.PrivateKeyFromStringEd25519},
		{"ECDSA", hedera.PrivateKeyFromStringECDSA},
		{"generic", hedera.PrivateKeyFromString},
	}

	failures := make([]string, 0, len(parsers))
	for _, parser := range parsers {
		key, err := parser.parse(candidate)
		if err == nil {
			return key, nil
		}
		failures = append(failures, fmt.Sprintf("%s (%v)", parser.name, err))
	}

	return hedera.PrivateKey{}, fmt.Errorf("failed to parse private key as %s", strings.Join(failures, ", "))
}
