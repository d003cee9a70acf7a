package models

import "encoding/json"

// DeploymentResult captures all facts about one successful deployment.
// Immutable after creation; failures are reported as errors, not partial
// results.
type DeploymentResult struct {
	ContractName    string            `json:"contract_name"`
	ContractAddress string            `json:"contract_address"`
	DeployerAddress string            `json:"deployer_address"`
	Network         string            `json:"network"`
	TxHash          string            `json:"tx_hash"`
	ABI             json.RawMessage   `json:"abi"`
	Bytecode        string            `json:"deployed_bytecode"`
	SourceCode      string            `json:"contract_code"`
	Params          map[string]string `json:"contract_params"`
	SourcePublished bool              `json:"source_published"`
}

// InteractionResult is the outcome of invoking a method on a deployed
// contract.
type InteractionResult struct {
	TxHash   string `json:"tx_hash"`
	TxStatus uint64 `json:"tx_status"`
}
