package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
)

// TemplateStore handles persistence of contract templates
type TemplateStore interface {
	List(ctx context.Context) ([]string, error)
	Read(ctx context.Context, name string) (*models.Template, error)
	Exists(ctx context.Context, name string) (bool, error)
	Write(ctx context.Context, name, source string) error
	Remove(ctx context.Context, name string) error
}

// ContractWriter persists rendered contract sources, one file per contract
type ContractWriter interface {
	WriteContract(ctx context.Context, name, source string) error
	ListContracts(ctx context.Context) ([]string, error)
}

// Project is a compiled set of contract containers. Acquired per call and
// released with Close on every exit path, success or failure.
type Project interface {
	// Contract resolves a contract container by its declared name
	Contract(name string) (*models.ContractArtifact, bool)
	// Names lists the contract names declared in the compiled source
	Names() []string
	Close() error
}

// ProjectLoader compiles contract source into a Project
type ProjectLoader interface {
	// CompileSource compiles raw source text
	CompileSource(ctx context.Context, source string) (Project, error)
	// LoadContract compiles a previously written contract by name
	LoadContract(ctx context.Context, name string) (Project, error)
}

// Wallet manages named signing identities in the keystore
type Wallet interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name, passphrase string) (*models.Account, error)
	// Create generates a new key, or imports privateKeyHex when given, and
	// saves it encrypted under name when a passphrase is provided
	Create(ctx context.Context, name, passphrase, privateKeyHex string) (*models.Account, error)
	Delete(ctx context.Context, name, passphrase string) error
}

// DeployReceipt is the chain's answer to a deployment submission
type DeployReceipt struct {
	ContractAddress common.Address
	TxHash          common.Hash
	SourcePublished bool
}

// TransactReceipt is the chain's answer to a method invocation
type TransactReceipt struct {
	TxHash common.Hash
	Status uint64
}

// Connection is one live network connection. At most one exists per session;
// the session tears an old one down before dialing the next.
type Connection interface {
	Network() *models.Network
	// Deploy submits a contract creation signed by from. publishSource is
	// forwarded verbatim to the toolkit.
	Deploy(ctx context.Context, from *models.Account, artifact *models.ContractArtifact, publishSource bool) (*DeployReceipt, error)
	// Transact invokes a method on an already-deployed contract
	Transact(ctx context.Context, from *models.Account, artifact *models.ContractArtifact, address common.Address, method string, args []any) (*TransactReceipt, error)
	Close()
}

// NetworkDialer establishes connections to named networks
type NetworkDialer interface {
	Dial(ctx context.Context, network *models.Network) (Connection, error)
}

// NetworkResolver resolves network names to endpoint definitions
type NetworkResolver interface {
	Resolve(name string) (*models.Network, error)
	Names() ([]string, error)
}
