package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/erc8021"
	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/mirror"
	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/shared"
)

var (
	callContract string
	callCalldata string
	callGas      uint64
	callMemo     string

	resultsLimit int
	resultsPages int
	resultsOrder string
)

var hederaCmd = &cobra.Command{
	Use:   "hedera",
	Short: "Attributed contract calls on Hedera",
}

var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Execute an attributed contract call with the configured operator",
	Long: `Submits a ContractExecuteTransaction whose function parameters carry the
attribution suffix. The operator is read from HEDERA_ACCOUNT_ID and
HEDERA_PRIVATE_KEY (or their network-scoped variants).`,
	RunE: runCall,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [transaction-id-or-hash]",
	Short: "Read the attribution of a past contract call from the mirror node",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var resultsCmd = &cobra.Command{
	Use:   "results [contract-id]",
	Short: "List attributed calls to a contract",
	Long:  `Lists calls carrying an attribution suffix; pass --app-code to keep only one code.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runResults,
}

func newHederaClient(withOperator bool) (*erc8021.Client, error) {
	clientConfig := erc8021.ClientConfig{
		Network:       config.Network,
		MirrorBaseURL: config.MirrorBaseURL,
		MirrorAPIKey:  config.MirrorAPIKey,
		AppCode:       appCode,
	}
	if withOperator {
		operator, err := shared.OperatorConfigFromEnv()
		if err != nil {
			return nil, err
		}
		clientConfig.Network = operator.Network
		clientConfig.OperatorAccountID = operator.AccountID
		clientConfig.OperatorPrivateKey = operator.PrivateKey
	}
	return erc8021.NewClient(clientConfig)
}

func runCall(cmd *cobra.Command, args []string) error {
	calldata, err := decodeHexArg("calldata", callCalldata)
	if err != nil {
		return err
	}
	client, err := newHederaClient(true)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := client.ExecuteAttributedCall(ctx, erc8021.ContractCallTxParams{
		ContractID:      callContract,
		Gas:             callGas,
		Calldata:        calldata,
		TransactionMemo: callMemo,
	})
	if err != nil {
		return err
	}
	logger.Info("executed attributed contract call",
		zap.String("contract", callContract),
		zap.String("transaction", result.TransactionID),
		zap.String("status", result.Status))
	return printJSON(cmd, result)
}

func runResolve(cmd *cobra.Command, args []string) error {
	client, err := newHederaClient(false)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := client.ResolveAttribution(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

func runResults(cmd *cobra.Command, args []string) error {
	client, err := newHederaClient(false)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	filter := ""
	if cmd.Flags().Changed("app-code") {
		filter = appCode
	}
	results, err := client.ListAttributedResults(ctx, args[0], filter, mirror.ContractResultsQueryOptions{
		Limit:    resultsLimit,
		Order:    resultsOrder,
		MaxPages: resultsPages,
	})
	if err != nil {
		return err
	}
	logger.Debug("listed attributed results", zap.String("contract", args[0]), zap.Int("count", len(results)))
	return printJSON(cmd, results)
}
