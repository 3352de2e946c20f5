package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/shared"
)

var (
	// Global flags
	verbose bool
	appCode string
	timeout time.Duration

	config shared.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sanctum",
	Short: "Lunar Machine Sanctum - ERC-8021 attribution toolkit",
	Long: `sanctum builds and inspects ERC-8021 attribution suffixes, attaches them
to EVM and Hedera contract calls, and runs the Lunar Machine Sanctum stages.

Configuration is read from SANCTUM_* environment variables and an optional
.env file in the working directory or any parent.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = shared.LoadConfig()
		if err != nil {
			return err
		}
		if appCode == "" {
			appCode = config.AppCode
		}

		logger, err = newLogger(config.LogLevel, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		zapConfig.Level = zap.NewAtomicLevelAt(parsed)
	}
	return zapConfig.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&appCode, "app-code", "", "Attribution code (default: SANCTUM_APP_CODE)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	suffixCmd.Flags().BoolVar(&strictSuffix, "strict", false, "Reject codes that cannot be encoded one byte per character")
	payloadCmd.Flags().StringVar(&payloadTarget, "target", "", "Target wallet address (default: SANCTUM_TARGET_ADDRESS)")

	evmTxCmd.Flags().StringVar(&evmChain, "chain", "", "Chain name or ID (default: SANCTUM_CHAIN_ID)")
	evmTxCmd.Flags().StringVar(&evmTo, "to", "", "Recipient contract address (required)")
	evmTxCmd.Flags().StringVar(&evmCalldata, "calldata", "0x", "Function calldata")
	evmTxCmd.Flags().Uint64Var(&evmNonce, "nonce", 0, "Account nonce")
	evmTxCmd.Flags().Uint64Var(&evmGas, "gas", 0, "Gas limit")
	evmTxCmd.Flags().StringVar(&evmValue, "value", "0", "Value in wei")
	evmTxCmd.Flags().StringVar(&evmTip, "tip", "0", "Max priority fee per gas in wei")
	evmTxCmd.Flags().StringVar(&evmFeeCap, "fee-cap", "0", "Max fee per gas in wei")
	evmTxCmd.Flags().BoolVar(&evmSign, "sign", false, "Sign with SANCTUM_EVM_PRIVATE_KEY")
	evmTxCmd.Flags().BoolVar(&evmFetch, "fetch", false, "Read nonce and fees from the chain RPC (requires --sign)")
	evmTxCmd.MarkFlagRequired("to")

	callCmd.Flags().StringVar(&callContract, "contract", "", "Hedera contract ID (required)")
	callCmd.Flags().StringVar(&callCalldata, "calldata", "0x", "Function calldata")
	callCmd.Flags().Uint64Var(&callGas, "gas", 0, "Gas limit")
	callCmd.Flags().StringVar(&callMemo, "memo", "", "Transaction memo")
	callCmd.MarkFlagRequired("contract")

	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 25, "Page size")
	resultsCmd.Flags().IntVar(&resultsPages, "pages", 1, "Maximum pages to read")
	resultsCmd.Flags().StringVar(&resultsOrder, "order", "desc", "Sort order (asc or desc)")

	playCmd.Flags().IntVar(&playStages, "stages", 5, "Number of stages to reactivate")

	hederaCmd.AddCommand(callCmd)
	hederaCmd.AddCommand(resolveCmd)
	hederaCmd.AddCommand(resultsCmd)

	rootCmd.AddCommand(suffixCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(attributeCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(evmTxCmd)
	rootCmd.AddCommand(hederaCmd)
	rootCmd.AddCommand(loreCmd)
	rootCmd.AddCommand(playCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
