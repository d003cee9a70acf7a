package cli

import (
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the deployment API server",
		Long: `Starts the HTTP server and blocks until interrupted. Account and network
state lives in the server process, so clients talk to one shared session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := getApp(cmd)
			if err != nil {
				return err
			}

			color.Green("scd %s", Version)
			color.White("project root: %s", appInstance.Config.ProjectRoot)
			color.White("listening on: %s", appInstance.Config.ListenAddr)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return appInstance.Server.Run(ctx)
		},
	}

	cmd.Flags().String("listen-addr", ":8000", "Address for the HTTP server to listen on")
	cmd.Flags().Bool("enable-cors", false, "Enable CORS for browser clients")
	cmd.Flags().String("cors-origins", "", "Comma-separated list of allowed CORS origins")
	cmd.Flags().String("solc-path", "solc", "Path to the solc binary")
	cmd.Flags().Duration("timeout", 0, "Timeout for chain submissions (0 uses the configured default)")

	return cmd
}
