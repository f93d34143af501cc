package cmd

import (
	"github.com/spf13/cobra"
)

var pubChannel string

var pubCmd = &cobra.Command{
	Use:   "pub <message>",
	Short: "Publish a message to the running bridge",
	Long: `Publish a message to the running acomm bridge.

The bridge must accept connections. Use --channel to tag the message
with a channel name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.Publish(cmd.Context(), args[0], pubChannel)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the active session",
	Long: `Send /clear to the running bridge, discarding the event backlog
and the agent session. Does nothing when the bridge is not running.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApplication(cmd)
		if err != nil {
			return err
		}
		return application.Services().Orchestrator.Reset(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(pubCmd)
	rootCmd.AddCommand(resetCmd)
	pubCmd.Flags().StringVarP(&pubChannel, "channel", "c", "", "Channel to publish on")
}
