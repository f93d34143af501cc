package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	debugFlag  bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yuiclaw",
	Short: "Supervise the acomm, amem and abeat agent stack",
	Long: `yuiclaw starts and supervises a local AI agent stack: the acomm
message bridge and its channel adapters (ntfy, Discord, Slack), the amem
memory store and the abeat scheduler.

Running yuiclaw without a subcommand is the same as 'yuiclaw start'.
Channel credentials are read from the environment and from
~/.config/yuiclaw/.env.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. bridge not installed, publish failed)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runStart,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "yuiclaw version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: layered ~/.config/yuiclaw/config.yaml and ./.yuiclaw/config.yaml)")

	rootCmd.Flags().StringVarP(&startProvider, "provider", "p", "", "AI provider passed to the TUI (default from config, Gemini)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
