package main

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/evm"
)

var (
	evmChain    string
	evmTo       string
	evmCalldata string
	evmNonce    uint64
	evmGas      uint64
	evmValue    string
	evmTip      string
	evmFeeCap   string
	evmSign     bool
	evmFetch    bool
)

var evmTxCmd = &cobra.Command{
	Use:   "evm-tx",
	Short: "Build an attributed EIP-1559 transaction for Base or Optimism",
	Long: `Builds a transaction whose data is the calldata followed by the
attribution suffix. The transaction is printed, never broadcast.

Example:
  sanctum evm-tx --chain base --to 0x... --calldata 0xa9059cbb... --sign --fetch`,
	RunE: runEVMTx,
}

type evmTxOutput struct {
	Chain   string `json:"chain"`
	From    string `json:"from,omitempty"`
	Hash    string `json:"hash"`
	Data    string `json:"data"`
	Signed  bool   `json:"signed"`
	RawTx   string `json:"rawTransaction,omitempty"`
	AppCode string `json:"appCode"`
}

func resolveChain(raw string) (evm.Chain, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		value = strconv.FormatUint(config.ChainID, 10)
	}
	if id, err := strconv.ParseUint(value, 10, 64); err == nil {
		if chain, ok := evm.ChainByID(id); ok {
			return chain, nil
		}
	}
	if chain, ok := evm.ChainByName(value); ok {
		return chain, nil
	}
	return evm.Chain{}, fmt.Errorf("%w: %s", evm.ErrUnsupportedChain, value)
}

func parseWei(name, raw string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return value, nil
}

func runEVMTx(cmd *cobra.Command, args []string) error {
	chain, err := resolveChain(evmChain)
	if err != nil {
		return err
	}
	calldata, err := decodeHexArg("calldata", evmCalldata)
	if err != nil {
		return err
	}

	params := evm.TxParams{
		ChainID:  chain.ID,
		Nonce:    evmNonce,
		To:       evmTo,
		Gas:      evmGas,
		Calldata: calldata,
		AppCode:  appCode,
	}
	if params.Value, err = parseWei("value", evmValue); err != nil {
		return err
	}
	if params.GasTipCap, err = parseWei("tip", evmTip); err != nil {
		return err
	}
	if params.GasFeeCap, err = parseWei("fee cap", evmFeeCap); err != nil {
		return err
	}

	output := evmTxOutput{Chain: chain.Name, AppCode: appCode}
	if evmSign || evmFetch {
		if config.EVMPrivateKey == "" {
			return fmt.Errorf("SANCTUM_EVM_PRIVATE_KEY is required to sign")
		}
		from, err := evm.AddressFromPrivateKey(config.EVMPrivateKey)
		if err != nil {
			return err
		}
		output.From = from.Hex()

		if evmFetch {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			defaults, err := evm.FetchTxDefaults(ctx, chain, config.RPCURL, from)
			if err != nil {
				return err
			}
			params.Nonce = defaults.Nonce
			params.GasTipCap = defaults.GasTipCap
			params.GasFeeCap = defaults.GasFeeCap
			logger.Debug("fetched transaction defaults",
				zap.String("chain", chain.Name),
				zap.Uint64("nonce", defaults.Nonce),
				zap.Stringer("feeCap", defaults.GasFeeCap))
		}
	}

	tx, err := evm.BuildAttributedTx(params)
	if err != nil {
		return err
	}
	if evmSign || evmFetch {
		tx, err = evm.SignTx(tx, config.EVMPrivateKey)
		if err != nil {
			return err
		}
		raw, err := tx.MarshalBinary()
		if err != nil {
			return fmt.Errorf("failed to encode transaction: %w", err)
		}
		output.Signed = true
		output.RawTx = hexutil.Encode(raw)
	}

	output.Hash = tx.Hash().Hex()
	output.Data = hexutil.Encode(tx.Data())
	logger.Info("built attributed transaction",
		zap.String("chain", chain.Name),
		zap.String("hash", output.Hash),
		zap.Bool("signed", output.Signed))
	return printJSON(cmd, output)
}
