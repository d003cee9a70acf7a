package usecase_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

const counterABI = `[
	{"type":"function","name":"set","inputs":[{"name":"value","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

func counterArtifact(t *testing.T) *models.ContractArtifact {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(counterABI))
	require.NoError(t, err)
	return &models.ContractArtifact{
		Name:     "Counter",
		ABI:      parsed,
		RawABI:   []byte(counterABI),
		Bytecode: "0x6080604052",
	}
}

func TestInteractContract(t *testing.T) {
	ctx := context.Background()
	address := "0x1111111111111111111111111111111111111111"

	t.Run("invokes the method with coerced arguments", func(t *testing.T) {
		artifact := counterArtifact(t)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("LoadContract", ctx, "Counter").Return(project, nil)

		session, conn := connectedSession(t)
		account, _ := session.ActiveAccount()
		conn.On("Transact", mock.Anything, account, artifact, common.HexToAddress(address), "set", []any{big.NewInt(42)}).
			Return(&usecase.TransactReceipt{TxHash: common.HexToHash("0xfeed"), Status: 1}, nil)

		uc := usecase.NewInteractContract(loader, session, testConfig(), testLogger())
		result, err := uc.Run(ctx, usecase.InteractParams{
			ContractName:    "Counter",
			ContractAddress: address,
			Method:          "set",
			Args:            []any{float64(42)},
		})

		require.NoError(t, err)
		assert.Equal(t, common.HexToHash("0xfeed").Hex(), result.TxHash)
		assert.Equal(t, uint64(1), result.TxStatus)

		project.AssertExpectations(t)
		conn.AssertExpectations(t)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		loader := new(MockProjectLoader)
		session, _ := connectedSession(t)

		uc := usecase.NewInteractContract(loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.InteractParams{
			ContractName:    "Counter",
			ContractAddress: "not-an-address",
			Method:          "set",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		loader.AssertNotCalled(t, "LoadContract", mock.Anything, mock.Anything)
	})

	t.Run("unknown contract", func(t *testing.T) {
		loader := new(MockProjectLoader)
		loader.On("LoadContract", ctx, "Ghost").Return(nil, &domain.ContractNotFoundError{Contract: "Ghost"})

		session, _ := connectedSession(t)
		uc := usecase.NewInteractContract(loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.InteractParams{
			ContractName:    "Ghost",
			ContractAddress: address,
			Method:          "set",
		})

		var notFound *domain.ContractNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("unknown method lists what the contract offers", func(t *testing.T) {
		artifact := counterArtifact(t)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("LoadContract", ctx, "Counter").Return(project, nil)

		session, conn := connectedSession(t)
		uc := usecase.NewInteractContract(loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.InteractParams{
			ContractName:    "Counter",
			ContractAddress: address,
			Method:          "increment",
		})

		var missing *domain.MethodNotFoundError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "increment", missing.Method)
		assert.ElementsMatch(t, []string{"set", "transfer"}, missing.Known)
		conn.AssertNotCalled(t, "Transact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad argument types fail before submission", func(t *testing.T) {
		artifact := counterArtifact(t)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("LoadContract", ctx, "Counter").Return(project, nil)

		session, conn := connectedSession(t)
		uc := usecase.NewInteractContract(loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.InteractParams{
			ContractName:    "Counter",
			ContractAddress: address,
			Method:          "transfer",
			Args:            []any{"not-an-address", float64(10)},
		})

		var invalid *domain.InvalidArgumentError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 0, invalid.Index)
		conn.AssertNotCalled(t, "Transact", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no active account", func(t *testing.T) {
		artifact := counterArtifact(t)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("LoadContract", ctx, "Counter").Return(project, nil)

		session := usecase.NewSession(new(MockNetworkDialer), testLogger())
		uc := usecase.NewInteractContract(loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.InteractParams{
			ContractName:    "Counter",
			ContractAddress: address,
			Method:          "set",
			Args:            []any{float64(1)},
		})

		assert.ErrorIs(t, err, domain.ErrNoActiveAccount)
		project.AssertCalled(t, "Close")
	})
}
