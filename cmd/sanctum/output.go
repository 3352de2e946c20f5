package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func printJSON(cmd *cobra.Command, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

// decodeHexArg accepts hex with or without a 0x prefix.
func decodeHexArg(name, raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "0x") && !strings.HasPrefix(trimmed, "0X") {
		trimmed = "0x" + trimmed
	}
	decoded, err := hexutil.Decode(strings.ToLower(trimmed))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return decoded, nil
}

func codeFromArgs(args []string, index int) string {
	if len(args) > index {
		return args[index]
	}
	return appCode
}
