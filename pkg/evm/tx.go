package evm

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/erc8021"
)

const DefaultGasLimit uint64 = 100000

type TxParams struct {
	ChainID   uint64
	Nonce     uint64
	To        string
	Value     *big.Int
	Gas       uint64
	GasTipCap *big.Int
	GasFeeCap *big.Int
	Calldata  []byte
	AppCode   string
}

// BuildAttributedTx builds an unsigned EIP-1559 transaction whose data is
// params.Calldata followed by the attribution suffix for params.AppCode.
func BuildAttributedTx(params TxParams) (*types.Transaction, error) {
	chain, ok := ChainByID(params.ChainID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, params.ChainID)
	}
	if err := ValidateAddress(params.To); err != nil {
		return nil, err
	}

	data, err := erc8021.AttributeCalldata(params.Calldata, params.AppCode)
	if err != nil {
		return nil, err
	}

	gas := params.Gas
	if gas == 0 {
		gas = DefaultGasLimit
	}
	to := common.HexToAddress(strings.TrimSpace(params.To))

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   chain.BigID(),
		Nonce:     params.Nonce,
		GasTipCap: orZero(params.GasTipCap),
		GasFeeCap: orZero(params.GasFeeCap),
		Gas:       gas,
		To:        &to,
		Value:     orZero(params.Value),
		Data:      data,
	}), nil
}

// SignTx signs tx for its own chain with a hex-encoded secp256k1 private key.
func SignTx(tx *types.Transaction, privateKeyHex string) (*types.Transaction, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(tx.ChainId()), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}

// AttributionOf extracts the attribution suffix carried by tx, if any.
func AttributionOf(tx *types.Transaction) (*erc8021.Suffix, bool) {
	suffix, _, ok := erc8021.ExtractAttribution(tx.Data())
	return suffix, ok
}

func orZero(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(value)
}
