package cmd

import (
	"yuiclaw/internal/reporting"

	"github.com/spf13/cobra"
)

var daemonStatusJSON bool

// daemonCmd represents the daemon command
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the headless bridge and channel adapters",
	Long: `Manage the headless part of the stack: the acomm bridge and the
channel adapters, without opening the TUI.

Available commands:
  start    - Start the bridge and every configured adapter
  stop     - Stop every adapter and the bridge
  restart  - Stop, then start
  status   - Report bridge and channel state (--json for scripts)`,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bridge and configured channel adapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.DaemonStart(cmd.Context())
	},
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop channel adapters and the bridge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.DaemonStop(cmd.Context())
	},
}

var daemonRestartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the bridge and channel adapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.DaemonRestart(cmd.Context())
	},
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report bridge and channel adapter state",
	Long: `Report whether the bridge accepts connections and whether each
configured channel adapter is connected.

With --json the output is a single object:

  {"bridge_running": true, "channels": [{"label": "Discord", "connected": true}]}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		status := application.Services().Orchestrator.DaemonStatus(cmd.Context())
		format := reporting.FormatTable
		if daemonStatusJSON {
			format = reporting.FormatJSON
		}
		return reporting.WriteDaemonStatus(cmd.OutOrStdout(), status, format)
	},
}

func init() {
	rootCmd.AddCommand(daemonCmd)

	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	daemonCmd.AddCommand(daemonRestartCmd)
	daemonCmd.AddCommand(daemonStatusCmd)

	daemonStatusCmd.Flags().BoolVar(&daemonStatusJSON, "json", false, "Print machine-readable JSON")
}
