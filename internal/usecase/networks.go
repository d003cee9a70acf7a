package usecase

import (
	"context"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// SetNetwork resolves a network name and switches the session's connection
// to it, tearing down any previously active connection first.
type SetNetwork struct {
	resolver NetworkResolver
	session  *Session
}

func NewSetNetwork(resolver NetworkResolver, session *Session) *SetNetwork {
	return &SetNetwork{resolver: resolver, session: session}
}

func (uc *SetNetwork) Run(ctx context.Context, name string) (*models.Network, error) {
	network, err := uc.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}
	return uc.session.Connect(ctx, network)
}

// ListNetworks lists the networks defined in the networks file.
type ListNetworks struct {
	resolver NetworkResolver
}

func NewListNetworks(resolver NetworkResolver) *ListNetworks {
	return &ListNetworks{resolver: resolver}
}

func (uc *ListNetworks) Run(ctx context.Context) ([]string, error) {
	return uc.resolver.Names()
}
