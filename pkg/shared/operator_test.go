package shared

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrivateKey = "302e020100300506032b65700422042091132178e72057a1d7528025956fe39b0b847f200ab59b2fdd367017f3087137"

var operatorEnvKeys = []string{
	"SANCTUM_NETWORK",
	"HEDERA_NETWORK",
	"HEDERA_ACCOUNT_ID",
	"HEDERA_OPERATOR_ID",
	"OPERATOR_ID",
	"HEDERA_PRIVATE_KEY",
	"HEDERA_OPERATOR_KEY",
	"OPERATOR_KEY",
	"MAINNET_HEDERA_ACCOUNT_ID",
	"MAINNET_HEDERA_PRIVATE_KEY",
	"TESTNET_HEDERA_ACCOUNT_ID",
	"TESTNET_HEDERA_PRIVATE_KEY",
}

// resetOperatorEnv blanks operator variables and marks .env as loaded so a
// developer's local file cannot leak into the test.
func resetOperatorEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})
	for _, key := range operatorEnvKeys {
		t.Setenv(key, "")
	}
}

func TestOperatorConfigFromEnvMissingAccountID(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	_, err := OperatorConfigFromEnv()
	assert.Error(t, err, "missing account ID")
}

func TestOperatorConfigFromEnvMissingPrivateKey(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")

	_, err := OperatorConfigFromEnv()
	assert.Error(t, err, "missing private key")
}

func TestOperatorConfigFromEnvDefaultsToTestnet(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, NetworkTestnet, config.Network)
	assert.Equal(t, "0.0.12345", config.AccountID)
	assert.Equal(t, testPrivateKey, config.PrivateKey)
}

func TestOperatorConfigFromEnvScopedMainnet(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_NETWORK", "mainnet")
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.11111")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)
	t.Setenv("MAINNET_HEDERA_ACCOUNT_ID", "0.0.99999")

	config, err := OperatorConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, NetworkMainnet, config.Network)
	assert.Equal(t, "0.0.99999", config.AccountID)
}

func TestOperatorConfigFromEnvFallbackKeys(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("OPERATOR_ID", "0.0.77777")
	t.Setenv("OPERATOR_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "0.0.77777", config.AccountID)
}

func TestOperatorConfigFromEnvBadNetwork(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("SANCTUM_NETWORK", "devnet")

	_, err := OperatorConfigFromEnv()
	assert.Error(t, err, "unsupported network")
}

func TestParsePrivateKey(t *testing.T) {
	key, err := ParsePrivateKey(testPrivateKey)
	require.NoError(t, err)
	assert.NotEmpty(t, key.String())
}

func TestParsePrivateKeyInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "notavalidkey", "0xinvalidhex"} {
		_, err := ParsePrivateKey(raw)
		assert.Error(t, err, raw)
	}
}
