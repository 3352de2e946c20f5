package mirror

// ContractResult is a single EVM execution as reported by the mirror node.
// FunctionParameters holds the 0x-prefixed calldata of the call.
type ContractResult struct {
	Address            string `json:"address"`
	Amount             int64  `json:"amount"`
	CallResult         string `json:"call_result"`
	ContractID         string `json:"contract_id"`
	ErrorMessage       string `json:"error_message"`
	From               string `json:"from"`
	FunctionParameters string `json:"function_parameters"`
	GasLimit           int64  `json:"gas_limit"`
	GasUsed            int64  `json:"gas_used"`
	Hash               string `json:"hash"`
	Result             string `json:"result"`
	Status             string `json:"status"`
	Timestamp          string `json:"timestamp"`
	To                 string `json:"to"`
}

type ContractResultsQueryOptions struct {
	Limit     int
	Order     string
	Timestamp string
	From      string
	MaxPages  int
}

type contractResultsResponse struct {
	Results []ContractResult `json:"results"`
	Links   struct {
		Next string `json:"next"`
	} `json:"links"`
}
