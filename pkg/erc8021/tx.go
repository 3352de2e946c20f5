package erc8021

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildAttributedContractCallTx builds a Hedera contract call whose function
// parameters carry the attribution suffix for params.AppCode.
func BuildAttributedContractCallTx(params ContractCallTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, err := hedera.ContractIDFromString(strings.TrimSpace(params.ContractID))
	if err != nil {
		return nil, fmt.Errorf("invalid contract ID: %w", err)
	}

	functionParameters, err := AttributeCalldata(params.Calldata, params.AppCode)
	if err != nil {
		return nil, err
	}

	gas := params.Gas
	if gas == 0 {
		gas = DefaultContractCallGas
	}

	transaction := hedera.NewContractExecuteTransaction().
		SetContractID(contractID).
		SetGas(gas).
		SetFunctionParameters(functionParameters)
	if params.PayableTinybars > 0 {
		transaction.SetPayableAmount(hedera.HbarFromTinybar(params.PayableTinybars))
	}
	if strings.TrimSpace(params.TransactionMemo) != "" {
		transaction.SetTransactionMemo(strings.TrimSpace(params.TransactionMemo))
	}
	return transaction, nil
}
