package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAccount(t *testing.T, name string) *models.Account {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return &models.Account{
		Name:       name,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}
}

// MockTemplateStore is a mock implementation of TemplateStore
type MockTemplateStore struct {
	mock.Mock
}

func (m *MockTemplateStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTemplateStore) Read(ctx context.Context, name string) (*models.Template, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateStore) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockTemplateStore) Write(ctx context.Context, name, source string) error {
	args := m.Called(ctx, name, source)
	return args.Error(0)
}

func (m *MockTemplateStore) Remove(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockContractWriter is a mock implementation of ContractWriter
type MockContractWriter struct {
	mock.Mock
}

func (m *MockContractWriter) WriteContract(ctx context.Context, name, source string) error {
	args := m.Called(ctx, name, source)
	return args.Error(0)
}

func (m *MockContractWriter) ListContracts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockProject is a mock implementation of Project
type MockProject struct {
	mock.Mock
}

func (m *MockProject) Contract(name string) (*models.ContractArtifact, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.ContractArtifact), args.Bool(1)
}

func (m *MockProject) Names() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockProject) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockProjectLoader is a mock implementation of ProjectLoader
type MockProjectLoader struct {
	mock.Mock
}

func (m *MockProjectLoader) CompileSource(ctx context.Context, source string) (usecase.Project, error) {
	args := m.Called(ctx, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.Project), args.Error(1)
}

func (m *MockProjectLoader) LoadContract(ctx context.Context, name string) (usecase.Project, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.Project), args.Error(1)
}

// MockWallet is a mock implementation of Wallet
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWallet) Load(ctx context.Context, name, passphrase string) (*models.Account, error) {
	args := m.Called(ctx, name, passphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockWallet) Create(ctx context.Context, name, passphrase, privateKeyHex string) (*models.Account, error) {
	args := m.Called(ctx, name, passphrase, privateKeyHex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockWallet) Delete(ctx context.Context, name, passphrase string) error {
	args := m.Called(ctx, name, passphrase)
	return args.Error(0)
}

// MockConnection is a mock implementation of Connection
type MockConnection struct {
	mock.Mock
}

func (m *MockConnection) Network() *models.Network {
	args := m.Called()
	return args.Get(0).(*models.Network)
}

func (m *MockConnection) Deploy(ctx context.Context, from *models.Account, artifact *models.ContractArtifact, publishSource bool) (*usecase.DeployReceipt, error) {
	args := m.Called(ctx, from, artifact, publishSource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DeployReceipt), args.Error(1)
}

func (m *MockConnection) Transact(ctx context.Context, from *models.Account, artifact *models.ContractArtifact, address common.Address, method string, callArgs []any) (*usecase.TransactReceipt, error) {
	args := m.Called(ctx, from, artifact, address, method, callArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TransactReceipt), args.Error(1)
}

func (m *MockConnection) Close() {
	m.Called()
}

// MockNetworkDialer is a mock implementation of NetworkDialer
type MockNetworkDialer struct {
	mock.Mock
}

func (m *MockNetworkDialer) Dial(ctx context.Context, network *models.Network) (usecase.Connection, error) {
	args := m.Called(ctx, network)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.Connection), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) Resolve(name string) (*models.Network, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Network), args.Error(1)
}

func (m *MockNetworkResolver) Names() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
