package erc8021

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/mirror"
	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/shared"
)

// Client executes attributed contract calls on Hedera and reads attribution
// back from the mirror node. The operator is only needed for execution.
type Client struct {
	hederaClient *hedera.Client
	mirrorClient *mirror.Client
	hasOperator  bool
	appCode      string
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	hederaClient, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}

	accountID := strings.TrimSpace(config.OperatorAccountID)
	privateKey := strings.TrimSpace(config.OperatorPrivateKey)
	if (accountID == "") != (privateKey == "") {
		return nil, fmt.Errorf("operator account ID and private key must be provided together")
	}
	if accountID != "" {
		operatorID, err := hedera.AccountIDFromString(accountID)
		if err != nil {
			return nil, fmt.Errorf("invalid operator account ID: %w", err)
		}
		operatorKey, err := shared.ParsePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		hederaClient.SetOperator(operatorID, operatorKey)
	}

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: network,
		BaseURL: config.MirrorBaseURL,
		APIKey:  config.MirrorAPIKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		hederaClient: hederaClient,
		mirrorClient: mirrorClient,
		hasOperator:  accountID != "",
		appCode:      config.AppCode,
	}, nil
}

// MirrorClient returns the configured mirror node client.
func (c *Client) MirrorClient() *mirror.Client {
	return c.mirrorClient
}

// ExecuteAttributedCall submits a contract call carrying the attribution
// suffix and waits for its receipt. params.AppCode defaults to the client's
// configured code.
func (c *Client) ExecuteAttributedCall(ctx context.Context, params ContractCallTxParams) (ContractCallResult, error) {
	if !c.hasOperator {
		return ContractCallResult{}, ErrOperatorRequired
	}

	if params.AppCode == "" {
		params.AppCode = c.appCode
	}

	transaction, err := BuildAttributedContractCallTx(params)
	if err != nil {
		return ContractCallResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return ContractCallResult{}, err
	}

	response, err := transaction.Execute(c.hederaClient)
	if err != nil {
		return ContractCallResult{}, fmt.Errorf("failed to execute contract call: %w", err)
	}
	receipt, err := response.GetReceipt(c.hederaClient)
	if err != nil {
		return ContractCallResult{}, fmt.Errorf("failed to get contract call receipt: %w", err)
	}

	return ContractCallResult{
		Success:       receipt.Status == hedera.StatusSuccess,
		TransactionID: response.TransactionID.String(),
		Status:        receipt.Status.String(),
		Suffix:        BuildSuffix(params.AppCode),
	}, nil
}

// ResolveAttribution loads a contract call from the mirror node and extracts
// its attribution suffix, if any. The client's code is matched exactly before
// falling back to ExtractAttribution.
func (c *Client) ResolveAttribution(ctx context.Context, transactionIDOrHash string) (*AttributedResult, error) {
	result, err := c.mirrorClient.GetContractResult(ctx, transactionIDOrHash)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("contract result %q not found", transactionIDOrHash)
	}
	return toAttributedResult(*result, c.appCode)
}

// ListAttributedResults returns the calls to contractID that carry an
// attribution suffix. A non-empty appCode keeps only calls whose calldata ends
// with exactly that code's suffix.
func (c *Client) ListAttributedResults(
	ctx context.Context,
	contractID string,
	appCode string,
	options mirror.ContractResultsQueryOptions,
) ([]AttributedResult, error) {
	results, err := c.mirrorClient.GetContractResults(ctx, contractID, options)
	if err != nil {
		return nil, err
	}

	attributed := make([]AttributedResult, 0, len(results))
	for _, result := range results {
		preferred := appCode
		if preferred == "" {
			preferred = c.appCode
		}
		resolved, err := toAttributedResult(result, preferred)
		if err != nil || !resolved.Attributed {
			continue
		}
		if appCode != "" && resolved.Suffix.AppCode != appCode {
			continue
		}
		attributed = append(attributed, *resolved)
	}
	return attributed, nil
}

// toAttributedResult prefers an exact match on preferred and otherwise takes
// the longest consistent suffix.
func toAttributedResult(result mirror.ContractResult, preferred string) (*AttributedResult, error) {
	resolved := &AttributedResult{
		Hash:       result.Hash,
		ContractID: result.ContractID,
		From:       result.From,
		Timestamp:  result.Timestamp,
	}

	parameters := strings.TrimSpace(result.FunctionParameters)
	if parameters == "" || parameters == "0x" {
		return resolved, nil
	}
	calldata, err := hexutil.Decode(parameters)
	if err != nil {
		return nil, fmt.Errorf("invalid function parameters for %s: %w", result.Hash, err)
	}

	var (
		suffix  *Suffix
		payload []byte
		ok      bool
	)
	if preferred != "" {
		suffix, payload, ok = ExtractAttributionFor(calldata, preferred)
	}
	if !ok {
		suffix, payload, ok = ExtractAttribution(calldata)
	}
	resolved.Attributed = ok
	resolved.Suffix = suffix
	resolved.Calldata = calldata
	if ok {
		resolved.Calldata = payload
	}
	return resolved, nil
}
