package models

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractArtifact is one compiled contract container: the ABI in both
// parsed and raw form, plus the creation bytecode.
type ContractArtifact struct {
	Name     string
	ABI      abi.ABI
	RawABI   json.RawMessage
	Bytecode string
}

// Methods returns the names of the callable methods declared by the ABI.
func (a *ContractArtifact) Methods() []string {
	names := make([]string, 0, len(a.ABI.Methods))
	for name := range a.ABI.Methods {
		names = append(names, name)
	}
	return names
}
