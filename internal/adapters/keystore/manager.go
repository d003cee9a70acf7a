package keystore

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

const keyfileExt = ".json"

// Manager stores signing identities as encrypted geth keyfiles, one per
// account, filename = account name. Key material only leaves the file
// decrypted into memory when an account is loaded or deleted.
type Manager struct {
	dir string
	log *slog.Logger
}

// NewManager creates a keystore manager over the configured keystore
// directory.
func NewManager(cfg *config.RuntimeConfig, log *slog.Logger) *Manager {
	return &Manager{
		dir: cfg.KeystoreDir,
		log: log.With("component", "Keystore"),
	}
}

func (m *Manager) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read keystore: %w", err)
	}

	names := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), keyfileExt) {
			return "", false
		}
		return strings.TrimSuffix(entry.Name(), keyfileExt), true
	})
	return names, nil
}

func (m *Manager) Load(ctx context.Context, name, passphrase string) (*models.Account, error) {
	keyjson, err := os.ReadFile(m.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no account named %q", domain.ErrAccountNotFound, name)
		}
		return nil, fmt.Errorf("failed to read keyfile for %q: %w", name, err)
	}

	key, err := keystore.DecryptKey(keyjson, passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to unlock account %q: %w", name, err)
	}

	return &models.Account{
		Name:       name,
		Address:    key.Address,
		PrivateKey: key.PrivateKey,
	}, nil
}

func (m *Manager) Create(ctx context.Context, name, passphrase, privateKeyHex string) (*models.Account, error) {
	key, err := newKey(privateKeyHex)
	if err != nil {
		return nil, err
	}

	// Without a passphrase the key is returned to the caller but never
	// persisted.
	if passphrase != "" {
		keyjson, err := keystore.EncryptKey(key, passphrase, keystore.StandardScryptN, keystore.StandardScryptP)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt key: %w", err)
		}
		if err := os.WriteFile(m.path(name), keyjson, 0o600); err != nil {
			return nil, fmt.Errorf("failed to save keyfile: %w", err)
		}
		m.log.Info("keyfile saved", "name", name, "address", key.Address.Hex())
	}

	return &models.Account{
		Name:       name,
		Address:    key.Address,
		PrivateKey: key.PrivateKey,
	}, nil
}

func (m *Manager) Delete(ctx context.Context, name, passphrase string) error {
	// The passphrase must decrypt the keyfile before it may be removed.
	if _, err := m.Load(ctx, name, passphrase); err != nil {
		return err
	}
	if err := os.Remove(m.path(name)); err != nil {
		return fmt.Errorf("failed to remove keyfile for %q: %w", name, err)
	}
	m.log.Info("keyfile removed", "name", name)
	return nil
}

func (m *Manager) path(name string) string {
	return filepath.Join(m.dir, name+keyfileExt)
}

func newKey(privateKeyHex string) (*keystore.Key, error) {
	if privateKeyHex == "" {
		pk, err := crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("failed to generate key: %w", err)
		}
		return wrapKey(pk), nil
	}

	pk, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return wrapKey(pk), nil
}

func wrapKey(pk *ecdsa.PrivateKey) *keystore.Key {
	return &keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(pk.PublicKey),
		PrivateKey: pk,
	}
}

var _ usecase.Wallet = (*Manager)(nil)
