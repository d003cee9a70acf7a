package app

import (
	"github.com/Jeevan-J/smart-contract-deployer/internal/domain/config"
	"github.com/Jeevan-J/smart-contract-deployer/internal/httpapi"
	"github.com/Jeevan-J/smart-contract-deployer/internal/usecase"
)

// App is the main application container
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// The process-wide deployment session
	Session *usecase.Session

	// The HTTP façade
	Server *httpapi.Server
}

// NewApp creates a new application instance
func NewApp(
	cfg *config.RuntimeConfig,
	session *usecase.Session,
	server *httpapi.Server,
) (*App, error) {
	return &App{
		Config:  cfg,
		Session: session,
		Server:  server,
	}, nil
}
