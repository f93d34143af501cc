package cmd

import (
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the acomm bridge",
	Long: `Stop every acomm bridge process and remove the bridge socket.

If the socket file does not exist the bridge is considered stopped and
nothing is done. Channel adapters are left running; use
'yuiclaw daemon stop' to stop them as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.StopBridge(cmd.Context())
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Stop the bridge and start the stack again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.Restart(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(restartCmd)
}
