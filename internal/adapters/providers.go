package adapters

import (
	"github.com/google/wire"

	"github.com/Jeevan-J/smart-contract-deployer/internal/adapters/chain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/adapters/fs"
	"github.com/Jeevan-J/smart-contract-deployer/internal/adapters/keystore"
	"github.com/Jeevan-J/smart-contract-deployer/internal/adapters/solc"
	internalconfig "github.com/Jeevan-J/smart-contract-deployer/internal/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewTemplateStoreAdapter,
	wire.Bind(new(usecase.TemplateStore), new(*fs.TemplateStoreAdapter)),

	fs.NewContractWriterAdapter,
	wire.Bind(new(usecase.ContractWriter), new(*fs.ContractWriterAdapter)),
)

// KeystoreSet provides the wallet implementation
var KeystoreSet = wire.NewSet(
	keystore.NewManager,
	wire.Bind(new(usecase.Wallet), new(*keystore.Manager)),
)

// SolcSet provides the compiler implementation
var SolcSet = wire.NewSet(
	solc.NewCompilerAdapter,
	wire.Bind(new(usecase.ProjectLoader), new(*solc.CompilerAdapter)),
)

// ChainSet provides the chain connectivity implementations
var ChainSet = wire.NewSet(
	chain.NewDialer,
	wire.Bind(new(usecase.NetworkDialer), new(*chain.Dialer)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolver)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	KeystoreSet,
	SolcSet,
	ChainSet,
	ConfigSet,
)
