package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// ListAccounts lists the named identities available in the keystore.
type ListAccounts struct {
	wallet Wallet
}

func NewListAccounts(wallet Wallet) *ListAccounts {
	return &ListAccounts{wallet: wallet}
}

func (uc *ListAccounts) Run(ctx context.Context) ([]string, error) {
	return uc.wallet.List(ctx)
}

// SetActiveAccount loads an identity from the keystore and binds it to the
// session as the transaction sender.
type SetActiveAccount struct {
	wallet  Wallet
	session *Session
}

func NewSetActiveAccount(wallet Wallet, session *Session) *SetActiveAccount {
	return &SetActiveAccount{wallet: wallet, session: session}
}

func (uc *SetActiveAccount) Run(ctx context.Context, name, passphrase string) (*models.Account, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	account, err := uc.wallet.Load(ctx, name, passphrase)
	if err != nil {
		return nil, err
	}

	uc.session.SetAccount(account)
	return account, nil
}

// GenerateAccount creates a new identity, or imports one from a private
// key, and saves it encrypted when a passphrase is given.
type GenerateAccount struct {
	wallet Wallet
	log    *slog.Logger
}

func NewGenerateAccount(wallet Wallet, log *slog.Logger) *GenerateAccount {
	return &GenerateAccount{
		wallet: wallet,
		log:    log.With("component", "GenerateAccount"),
	}
}

// GenerateAccountResult echoes the new key material back to the caller,
// matching the generate endpoint's contract. The key is never logged.
type GenerateAccountResult struct {
	Address       string `json:"account_address"`
	PrivateKeyHex string `json:"account_private_key"`
}

func (uc *GenerateAccount) Run(ctx context.Context, name, passphrase, privateKeyHex string) (*GenerateAccountResult, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	account, err := uc.wallet.Create(ctx, name, passphrase, privateKeyHex)
	if err != nil {
		return nil, err
	}

	uc.log.Info("account generated", "name", name, "address", account.Address.Hex())

	return &GenerateAccountResult{
		Address:       account.Address.Hex(),
		PrivateKeyHex: hexutil.Encode(crypto.FromECDSA(account.PrivateKey)),
	}, nil
}

// DeleteAccount removes a named identity after verifying its passphrase.
type DeleteAccount struct {
	wallet  Wallet
	session *Session
}

func NewDeleteAccount(wallet Wallet, session *Session) *DeleteAccount {
	return &DeleteAccount{wallet: wallet, session: session}
}

func (uc *DeleteAccount) Run(ctx context.Context, name, passphrase string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}

	if err := uc.wallet.Delete(ctx, name, passphrase); err != nil {
		return err
	}

	// Deleting the active identity leaves the session without a signer.
	if active, ok := uc.session.ActiveAccount(); ok && active.Name == name {
		uc.session.ClearAccount()
	}
	return nil
}
