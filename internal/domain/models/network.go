package models

// Network is a chain endpoint definition resolved from the networks file.
type Network struct {
	Name    string `json:"name" toml:"-"`
	RPCURL  string `json:"rpc_url" toml:"rpc_url"`
	ChainID uint64 `json:"chain_id" toml:"chain_id"`
}
