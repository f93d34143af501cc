package config

import "time"

const (
	DefaultSocketPath = "/tmp/acomm.sock"
	DefaultProvider   = "Gemini"

	DefaultReadinessAttempts = 20
	DefaultReadinessDelay    = 100 * time.Millisecond
	DefaultProbeTimeout      = 500 * time.Millisecond
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() YuiclawConfig {
	return YuiclawConfig{
		SocketPath:      DefaultSocketPath,
		DefaultProvider: DefaultProvider,
		Binaries: BinariesConfig{
			Bridge:      "acomm",
			TUI:         "acomm-tui",
			TUIFallback: "acomm",
			Memory:      "amem",
			Scheduler:   "abeat",
		},
		Readiness: ReadinessConfig{
			Attempts:     DefaultReadinessAttempts,
			Delay:        DefaultReadinessDelay,
			ProbeTimeout: DefaultProbeTimeout,
		},
	}
}
