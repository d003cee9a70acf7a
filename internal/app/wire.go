//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/Jeevan-J/smart-contract-deployer/internal/adapters"
	"github.com/Jeevan-J/smart-contract-deployer/internal/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/httpapi"
	"github.com/Jeevan-J/smart-contract-deployer/internal/logging"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Session and use cases
		usecase.NewSession,
		usecase.NewListAccounts,
		usecase.NewSetActiveAccount,
		usecase.NewGenerateAccount,
		usecase.NewDeleteAccount,
		usecase.NewSetNetwork,
		usecase.NewListNetworks,
		usecase.NewListTemplates,
		usecase.NewGetTemplate,
		usecase.NewAddTemplate,
		usecase.NewRemoveTemplate,
		usecase.NewDeployTemplate,
		usecase.NewInteractContract,
		usecase.NewListContracts,

		// HTTP surface
		httpapi.NewHandlers,
		httpapi.NewServer,

		// App
		NewApp,
	)
	return nil, nil
}
