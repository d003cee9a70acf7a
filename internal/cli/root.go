package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jeevan-J/smart-contract-deployer/internal/app"
	"github.com/Jeevan-J/smart-contract-deployer/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scd",
		Short: "HTTP deployment server for templated smart contracts",
		Long: `scd serves an HTTP API for rendering Solidity contract templates,
compiling them with solc and deploying the result to a configured network.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := cmd.Flags().GetString("project-root")
			if err != nil {
				return err
			}
			if projectRoot == "" {
				projectRoot = "."
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			if err := config.EnsureProjectLayout(appInstance.Config); err != nil {
				return err
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().StringP("project-root", "p", ".", "Project root holding templates, contracts and the keystore")

	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
