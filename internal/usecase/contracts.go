package usecase

import "context"

// ListContracts lists the contracts known to the contracts folder.
type ListContracts struct {
	contracts ContractWriter
}

func NewListContracts(contracts ContractWriter) *ListContracts {
	return &ListContracts{contracts: contracts}
}

func (uc *ListContracts) Run(ctx context.Context) ([]string, error) {
	return uc.contracts.ListContracts(ctx)
}
