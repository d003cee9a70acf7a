package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// networksFile mirrors the on-disk TOML layout:
//
//	[networks.sepolia]
//	rpc_url = "https://rpc.sepolia.org"
//	chain_id = 11155111
type networksFile struct {
	Networks map[string]models.Network `toml:"networks"`
}

// NetworkResolver resolves network names against the networks TOML file.
type NetworkResolver struct {
	path string
}

// NewNetworkResolver creates a resolver for the configured networks file.
func NewNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return &NetworkResolver{path: cfg.NetworksFile}
}

// Resolve looks up a network definition by name.
func (r *NetworkResolver) Resolve(name string) (*models.Network, error) {
	defs, err := r.load()
	if err != nil {
		return nil, &domain.ConnectionError{Network: name, Err: err}
	}

	network, ok := defs[name]
	if !ok {
		return nil, &domain.ConnectionError{
			Network: name,
			Err:     fmt.Errorf("network not defined in %s", r.path),
		}
	}
	network.Name = name
	return &network, nil
}

// Names returns the defined network names, sorted.
func (r *NetworkResolver) Names() ([]string, error) {
	defs, err := r.load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *NetworkResolver) load() (map[string]models.Network, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var file networksFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse networks file: %w", err)
	}
	return file.Networks, nil
}
