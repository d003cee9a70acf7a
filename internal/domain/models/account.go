package models

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
)

// Account is a signing identity loaded from the keystore. The private key
// is held in memory only while the account is active; it never appears in
// API responses.
type Account struct {
	Name       string
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// Info is the API-safe projection of an account.
type AccountInfo struct {
	Name    string `json:"account_name"`
	Address string `json:"account_address"`
}

func (a *Account) Info() AccountInfo {
	return AccountInfo{
		Name:    a.Name,
		Address: a.Address.Hex(),
	}
}
