package cmd

import (
	"time"

	"yuiclaw/internal/reporting"

	"github.com/spf13/cobra"
)

var (
	statusOutputFormat string
	statusWatch        bool
	statusInterval     time.Duration
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every component",
	Long: `Show which tools are installed, whether the bridge accepts
connections, the state of every configured channel adapter, the
scheduled abeat jobs and the amem root.

status is read-only: it never starts the bridge or removes a socket.
A channel counts as connected only when the bridge is running and its
adapter process is alive. Channels without credentials are not listed.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().StringVarP(&statusOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	statusCmd.Flags().BoolVarP(&statusWatch, "watch", "w", false, "Refresh the status in an interactive view")
	statusCmd.Flags().DurationVar(&statusInterval, "interval", 2*time.Second, "Refresh interval for --watch")
}

func runStatus(cmd *cobra.Command, args []string) error {
	format, err := reporting.ParseFormat(statusOutputFormat)
	if err != nil {
		return err
	}

	application, err := newApplication(cmd)
	if err != nil {
		return err
	}

	if statusWatch {
		return application.RunStatusWatch(cmd.Context(), statusInterval)
	}

	report := application.Services().Orchestrator.CollectStatus(cmd.Context())
	return reporting.WriteReport(cmd.OutOrStdout(), report, format)
}
