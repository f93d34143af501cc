package cmd

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize amem, abeat and the default scheduled jobs",
	Long: `Initialize amem and abeat and register two abeat jobs when they
do not exist yet:

  yuiclaw-heartbeat         every 30m, publishes a proactive check-in
  yuiclaw-daemon-watchdog   every 5m, restarts the daemon when the bridge
                            is down or a channel is disconnected

Missing tools are skipped. Running init again is safe.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.Initialize(cmd.Context())
	},
}

var tickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Run the due abeat jobs once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.Tick(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(tickCmd)
}
