package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNetwork(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"mainnet", NetworkMainnet},
		{"MAINNET", NetworkMainnet},
		{"  testnet  ", NetworkTestnet},
		{"Previewnet", NetworkPreviewnet},
		{"", NetworkTestnet},
		{"   ", NetworkTestnet},
	}

	for _, tc := range cases {
		result, err := NormalizeNetwork(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, result, tc.input)
	}
}

func TestNormalizeNetworkUnsupported(t *testing.T) {
	_, err := NormalizeNetwork("devnet")
	assert.Error(t, err)
}

func TestMirrorBaseURL(t *testing.T) {
	assert.Equal(t, "https://mainnet-public.mirrornode.hedera.com", MirrorBaseURL(NetworkMainnet))
	assert.Equal(t, "https://testnet.mirrornode.hedera.com", MirrorBaseURL(NetworkTestnet))
}

func TestNewHederaClient(t *testing.T) {
	for _, network := range []string{"mainnet", "testnet", "previewnet"} {
		client, err := NewHederaClient(network)
		require.NoError(t, err, network)
		assert.NotNil(t, client, network)
	}
}

func TestNewHederaClientUnsupported(t *testing.T) {
	_, err := NewHederaClient("badnet")
	assert.Error(t, err)
}
