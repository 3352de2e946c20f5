package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	NetworkMainnet    = "mainnet"
	NetworkTestnet    = "testnet"
	NetworkPreviewnet = "previewnet"
)

var mirrorBaseURLs = map[string]string{
	NetworkMainnet:    "https://mainnet-public.mirrornode.hedera.com",
	NetworkTestnet:    "https://testnet.mirrornode.hedera.com",
	NetworkPreviewnet: "https://previewnet.mirrornode.hedera.com",
}

// NormalizeNetwork lower-cases and validates a Hedera network name. An empty
// name selects testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}
	if _, ok := mirrorBaseURLs[normalized]; !ok {
		return "", fmt.Errorf("unsupported network %q", network)
	}
	return normalized, nil
}

// MirrorBaseURL returns the public mirror node endpoint of a normalized network.
func MirrorBaseURL(network string) string {
	return mirrorBaseURLs[network]
}

// NewHederaClient creates a consensus node client for the network.
func NewHederaClient(network string) (*hedera.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	switch normalized {
	case NetworkMainnet:
		return hedera.ClientForMainnet(), nil
	case NetworkPreviewnet:
		return hedera.ClientForPreviewnet(), nil
	default:
		return hedera.ClientForTestnet(), nil
	}
}
