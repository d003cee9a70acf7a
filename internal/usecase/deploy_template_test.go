package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Jeevan-J/smart-contract-deployer/internal/domain"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/models"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

const counterTemplate = "contract <NAME> { uint x = <VAL>; }"

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{Timeout: time.Minute}
}

// connectedSession builds a session with an active account and a live mock
// connection, returning both so tests can assert against the connection.
func connectedSession(t *testing.T) (*usecase.Session, *MockConnection) {
	t.Helper()

	network := &models.Network{Name: "local", RPCURL: "http://localhost:8545", ChainID: 1337}
	conn := new(MockConnection)
	conn.On("Network").Return(network)

	dialer := new(MockNetworkDialer)
	dialer.On("Dial", mock.Anything, network).Return(conn, nil)

	session := usecase.NewSession(dialer, testLogger())
	session.SetAccount(testAccount(t, "alice"))
	_, err := session.Connect(context.Background(), network)
	require.NoError(t, err)

	return session, conn
}

func TestDeployTemplate(t *testing.T) {
	ctx := context.Background()

	artifact := &models.ContractArtifact{
		Name:     "Counter",
		RawABI:   json.RawMessage(`[]`),
		Bytecode: "0x6080604052",
	}
	rendered := "contract Counter { uint x = 5; }"

	t.Run("full pipeline", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "counter").Return(&models.Template{Name: "counter", Source: counterTemplate}, nil)

		contracts := new(MockContractWriter)
		contracts.On("WriteContract", ctx, "Counter", rendered).Return(nil)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("CompileSource", ctx, rendered).Return(project, nil)

		session, conn := connectedSession(t)
		account, _ := session.ActiveAccount()
		conn.On("Deploy", mock.Anything, account, artifact, true).Return(&usecase.DeployReceipt{
			ContractAddress: common.HexToAddress("0xdeadbeef00000000000000000000000000000000"),
			TxHash:          common.HexToHash("0xabc123"),
			SourcePublished: false,
		}, nil)

		uc := usecase.NewDeployTemplate(templates, contracts, loader, session, testConfig(), testLogger())
		result, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName:  "counter",
			ContractName:  "Counter",
			Params:        map[string]string{"NAME": "Counter", "VAL": "5"},
			PublishSource: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Counter", result.ContractName)
		assert.Equal(t, common.HexToAddress("0xdeadbeef00000000000000000000000000000000").Hex(), result.ContractAddress)
		assert.Equal(t, account.Address.Hex(), result.DeployerAddress)
		assert.Equal(t, "local", result.Network)
		assert.Equal(t, rendered, result.SourceCode)
		assert.False(t, result.SourcePublished)

		templates.AssertExpectations(t)
		contracts.AssertExpectations(t)
		project.AssertExpectations(t)
		conn.AssertExpectations(t)
	})

	t.Run("invalid template name fails before any I/O", func(t *testing.T) {
		templates := new(MockTemplateStore)
		contracts := new(MockContractWriter)
		loader := new(MockProjectLoader)
		session, conn := connectedSession(t)

		uc := usecase.NewDeployTemplate(templates, contracts, loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName: "../counter",
			ContractName: "Counter",
		})

		var invalid *domain.InvalidNameError
		require.ErrorAs(t, err, &invalid)
		templates.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
		conn.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown template", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "missing").Return(nil, &domain.TemplateNotFoundError{Template: "missing"})

		session, _ := connectedSession(t)
		uc := usecase.NewDeployTemplate(templates, new(MockContractWriter), new(MockProjectLoader), session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{TemplateName: "missing", ContractName: "Counter"})

		var notFound *domain.TemplateNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Template)
	})

	t.Run("strict render rejects incomplete substitution", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "counter").Return(&models.Template{Name: "counter", Source: counterTemplate}, nil)

		contracts := new(MockContractWriter)
		session, _ := connectedSession(t)

		uc := usecase.NewDeployTemplate(templates, contracts, new(MockProjectLoader), session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName: "counter",
			ContractName: "Counter",
			Params:       map[string]string{"NAME": "Counter"},
			StrictRender: true,
		})

		var incomplete *domain.IncompleteTemplateError
		require.ErrorAs(t, err, &incomplete)
		assert.Equal(t, []string{"<VAL>"}, incomplete.Missing)
		contracts.AssertNotCalled(t, "WriteContract", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("compilation failure keeps the written source", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "counter").Return(&models.Template{Name: "counter", Source: counterTemplate}, nil)

		contracts := new(MockContractWriter)
		contracts.On("WriteContract", ctx, "Counter", rendered).Return(nil)

		loader := new(MockProjectLoader)
		loader.On("CompileSource", ctx, rendered).Return(nil, errors.New("ParserError: expected ';'"))

		session, _ := connectedSession(t)
		uc := usecase.NewDeployTemplate(templates, contracts, loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName: "counter",
			ContractName: "Counter",
			Params:       map[string]string{"NAME": "Counter", "VAL": "5"},
		})

		var submission *domain.SubmissionError
		require.ErrorAs(t, err, &submission)
		assert.Equal(t, "compilation", submission.Op)

		// The rendered source was persisted before the compile attempt and
		// is never rolled back.
		contracts.AssertExpectations(t)
	})

	t.Run("contract name not declared in source", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "counter").Return(&models.Template{Name: "counter", Source: counterTemplate}, nil)

		contracts := new(MockContractWriter)
		contracts.On("WriteContract", ctx, "Bar", "contract Counter { uint x = 5; }").Return(nil)

		project := new(MockProject)
		project.On("Contract", "Bar").Return(nil, false)
		project.On("Names").Return([]string{"Counter"})
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("CompileSource", ctx, mock.Anything).Return(project, nil)

		session, conn := connectedSession(t)
		uc := usecase.NewDeployTemplate(templates, contracts, loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName: "counter",
			ContractName: "Bar",
			Params:       map[string]string{"NAME": "Counter", "VAL": "5"},
		})

		var mismatch *domain.ContractNameMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "Bar", mismatch.Requested)
		assert.Equal(t, []string{"Counter"}, mismatch.Declared)

		conn.AssertNotCalled(t, "Deploy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		project.AssertCalled(t, "Close")
	})

	t.Run("no active account means no submission", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "counter").Return(&models.Template{Name: "counter", Source: counterTemplate}, nil)

		contracts := new(MockContractWriter)
		contracts.On("WriteContract", ctx, "Counter", rendered).Return(nil)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("CompileSource", ctx, rendered).Return(project, nil)

		session := usecase.NewSession(new(MockNetworkDialer), testLogger())

		uc := usecase.NewDeployTemplate(templates, contracts, loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName: "counter",
			ContractName: "Counter",
			Params:       map[string]string{"NAME": "Counter", "VAL": "5"},
		})

		assert.ErrorIs(t, err, domain.ErrNoActiveAccount)
		project.AssertCalled(t, "Close")
	})

	t.Run("chain rejection becomes a deployment error", func(t *testing.T) {
		templates := new(MockTemplateStore)
		templates.On("Read", ctx, "counter").Return(&models.Template{Name: "counter", Source: counterTemplate}, nil)

		contracts := new(MockContractWriter)
		contracts.On("WriteContract", ctx, "Counter", rendered).Return(nil)

		project := new(MockProject)
		project.On("Contract", "Counter").Return(artifact, true)
		project.On("Close").Return(nil)

		loader := new(MockProjectLoader)
		loader.On("CompileSource", ctx, rendered).Return(project, nil)

		session, conn := connectedSession(t)
		conn.On("Deploy", mock.Anything, mock.Anything, artifact, true).Return(nil, errors.New("insufficient funds"))

		uc := usecase.NewDeployTemplate(templates, contracts, loader, session, testConfig(), testLogger())
		_, err := uc.Run(ctx, usecase.DeployTemplateParams{
			TemplateName:  "counter",
			ContractName:  "Counter",
			Params:        map[string]string{"NAME": "Counter", "VAL": "5"},
			PublishSource: true,
		})

		var submission *domain.SubmissionError
		require.ErrorAs(t, err, &submission)
		assert.Equal(t, "deployment", submission.Op)
	})
}
