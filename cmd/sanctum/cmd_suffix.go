package main

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/erc8021"
)

var (
	strictSuffix  bool
	payloadTarget string
)

var suffixCmd = &cobra.Command{
	Use:   "suffix [code]",
	Short: "Encode an attribution code as an ERC-8021 suffix",
	Long: `Prints the schema 0 suffix for the code (default: --app-code).

Without --strict every character is encoded, including ones wider than a
byte; with --strict such codes and codes longer than 255 bytes are rejected.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSuffix,
}

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode a suffix or attributed calldata",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

var attributeCmd = &cobra.Command{
	Use:   "attribute [calldata] [code]",
	Short: "Append the attribution suffix to calldata",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAttribute,
}

var payloadCmd = &cobra.Command{
	Use:   "payload [code]",
	Short: "Show the attribution payload for the target wallet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPayload,
}

func runSuffix(cmd *cobra.Command, args []string) error {
	code := codeFromArgs(args, 0)

	var suffix string
	if strictSuffix {
		var err error
		suffix, err = erc8021.BuildSuffixStrict(code)
		if err != nil {
			return err
		}
	} else {
		if err := erc8021.ValidateAppCode(code); err != nil {
			logger.Warn("suffix is not byte-aligned with the code", zap.String("code", code), zap.Error(err))
		}
		suffix = erc8021.BuildSuffix(code)
	}

	fmt.Fprintln(cmd.OutOrStdout(), suffix)
	return nil
}

type decodeOutput struct {
	Suffix   *erc8021.Suffix `json:"suffix"`
	Calldata string          `json:"calldata,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	if suffix, ok := erc8021.ParseSuffix(args[0]); ok {
		return printJSON(cmd, decodeOutput{Suffix: suffix})
	}

	data, err := decodeHexArg("hex", args[0])
	if err != nil {
		return err
	}
	var (
		suffix   *erc8021.Suffix
		calldata []byte
		ok       bool
	)
	if cmd.Flags().Changed("app-code") {
		suffix, calldata, ok = erc8021.ExtractAttributionFor(data, appCode)
	}
	if !ok {
		suffix, calldata, ok = erc8021.ExtractAttribution(data)
	}
	if !ok {
		return fmt.Errorf("no ERC-8021 attribution found")
	}
	return printJSON(cmd, decodeOutput{Suffix: suffix, Calldata: hexutil.Encode(calldata)})
}

func runAttribute(cmd *cobra.Command, args []string) error {
	calldata, err := decodeHexArg("calldata", args[0])
	if err != nil {
		return err
	}
	attributed, err := erc8021.AttributeCalldata(calldata, codeFromArgs(args, 1))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(attributed))
	return nil
}

func runPayload(cmd *cobra.Command, args []string) error {
	target := strings.TrimSpace(payloadTarget)
	if target == "" {
		target = config.TargetAddress
	}
	if target == "" {
		return fmt.Errorf("target address required: pass --target or set SANCTUM_TARGET_ADDRESS")
	}

	payload, err := erc8021.NewPayload(target, codeFromArgs(args, 0))
	if err != nil {
		return err
	}
	return printJSON(cmd, payload)
}
