package cmd

import (
	"yuiclaw/internal/app"

	"github.com/spf13/cobra"
)

// newApplication bootstraps logging, dotenv and config for a command run.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(debugFlag, configPath)
	cfg.Out = cmd.OutOrStdout()
	cfg.ErrOut = cmd.ErrOrStderr()
	return app.NewApplication(cfg)
}
