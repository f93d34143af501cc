package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var startProvider string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the stack and open the TUI",
	Long: `Start the YuiClaw stack and replace this process with the acomm TUI.

acomm must be in PATH. amem and abeat are initialized quietly when
present. Channel adapters whose credentials are set are started after
the bridge accepts connections; if the bridge never becomes ready the
adapters are skipped with a warning and the TUI still opens.

acomm-tui is preferred; acomm is used when acomm-tui is not installed.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

// providerShorthands maps shorthand subcommands to provider names.
var providerShorthands = []struct {
	use      string
	provider string
}{
	{"gemini", "Gemini"},
	{"claude", "Claude"},
	{"codex", "Codex"},
	{"opencode", "OpenCode"},
	{"dummy", "Dummy"},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().StringVarP(&startProvider, "provider", "p", "", "AI provider passed to the TUI (default from config, Gemini)")

	for _, s := range providerShorthands {
		rootCmd.AddCommand(newProviderCmd(s.use, s.provider))
	}
}

func runStart(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	provider := startProvider
	if provider == "" {
		provider = application.Config().YuiclawConfig.DefaultProvider
	}
	return application.Services().Orchestrator.StartStack(cmd.Context(), provider)
}

func newProviderCmd(use, provider string) *cobra.Command {
	var newSession bool
	c := &cobra.Command{
		Use:   use,
		Short: "Start the stack with the " + provider + " provider",
		Long: `Start the stack with the ` + provider + ` provider.

With --new, a running bridge is asked to clear the current session
before the TUI attaches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(cmd)
			if err != nil {
				return err
			}
			return application.Services().Orchestrator.StartWithOptions(cmd.Context(), provider, newSession)
		},
	}
	c.Flags().BoolVar(&newSession, "new", false, "Clear the current "+strings.ToLower(provider)+" session before attaching")
	return c
}
