package erc8021

const (
	// Marker is the ERC-8021 suffix marker, 0x8021 repeated to 16 bytes.
	Marker = "80218021802180218021802180218021"

	MarkerSize    = 16
	MaxCodeLength = 255

	DefaultContractCallGas uint64 = 100000
)

// SchemaID selects how the attribution payload preceding the marker is laid out.
type SchemaID uint8

const SchemaCanonical SchemaID = 0

// Suffix is a decoded schema 0 attribution suffix.
type Suffix struct {
	Length   int      `json:"length"`
	AppCode  string   `json:"appCode"`
	SchemaID SchemaID `json:"schemaId"`
	Hex      string   `json:"hex"`
}

// Payload pairs a generated suffix with the wallet it is displayed against.
type Payload struct {
	TargetAddress string   `json:"targetAddress"`
	AppCode       string   `json:"appCode"`
	SchemaID      SchemaID `json:"schemaId"`
	Suffix        string   `json:"suffix"`
}

type ClientConfig struct {
	OperatorAccountID  string
	OperatorPrivateKey string
	Network            string
	MirrorBaseURL      string
	MirrorAPIKey       string
	AppCode            string
}

// ContractCallTxParams describes an attributed contract call. It is used both
// to build the transaction and to execute it through Client.
type ContractCallTxParams struct {
	ContractID      string
	Gas             uint64
	Calldata        []byte
	AppCode         string
	PayableTinybars int64
	TransactionMemo string
}

type ContractCallResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Status        string `json:"status,omitempty"`
	Suffix        string `json:"suffix,omitempty"`
	Error         string `json:"error,omitempty"`
}

// AttributedResult is a contract call read back from the mirror node.
type AttributedResult struct {
	Hash       string  `json:"hash"`
	ContractID string  `json:"contract_id"`
	From       string  `json:"from"`
	Timestamp  string  `json:"timestamp"`
	Attributed bool    `json:"attributed"`
	Suffix     *Suffix `json:"suffix,omitempty"`
	Calldata   []byte  `json:"-"`
}
