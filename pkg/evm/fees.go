package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// TxDefaults are the account and fee fields read from a node.
type TxDefaults struct {
	Nonce     uint64
	GasTipCap *big.Int
	GasFeeCap *big.Int
}

// chainReader is the subset of *ethclient.Client used to fill TxDefaults.
type chainReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// FetchTxDefaults dials rpcURL (the chain's public endpoint when empty) and
// reads the pending nonce of from along with EIP-1559 fee suggestions.
func FetchTxDefaults(ctx context.Context, chain Chain, rpcURL string, from common.Address) (TxDefaults, error) {
	if rpcURL == "" {
		rpcURL = chain.RPCURL
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return TxDefaults{}, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}
	defer client.Close()

	return fetchTxDefaults(ctx, client, chain, from)
}

func fetchTxDefaults(ctx context.Context, reader chainReader, chain Chain, from common.Address) (TxDefaults, error) {
	chainID, err := reader.ChainID(ctx)
	if err != nil {
		return TxDefaults{}, fmt.Errorf("failed to read chain ID: %w", err)
	}
	if chainID.Cmp(chain.BigID()) != 0 {
		return TxDefaults{}, fmt.Errorf("%w: endpoint serves chain %s, expected %d", ErrUnsupportedChain, chainID, chain.ID)
	}

	nonce, err := reader.PendingNonceAt(ctx, from)
	if err != nil {
		return TxDefaults{}, fmt.Errorf("failed to read nonce: %w", err)
	}
	tip, err := reader.SuggestGasTipCap(ctx)
	if err != nil {
		return TxDefaults{}, fmt.Errorf("failed to suggest tip: %w", err)
	}
	head, err := reader.HeaderByNumber(ctx, nil)
	if err != nil {
		return TxDefaults{}, fmt.Errorf("failed to read latest header: %w", err)
	}

	// Two base fees of headroom plus the tip.
	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	return TxDefaults{Nonce: nonce, GasTipCap: tip, GasFeeCap: feeCap}, nil
}
