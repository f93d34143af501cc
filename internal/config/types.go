package config

import (
	"time"
)

// YuiclawConfig is the top-level configuration structure for yuiclaw.
type YuiclawConfig struct {
	// SocketPath is the unix socket the acomm bridge listens on.
	SocketPath string `yaml:"socketPath,omitempty"`
	// DefaultProvider is the AI provider handed to the TUI by `start`.
	DefaultProvider string          `yaml:"defaultProvider,omitempty"`
	Binaries        BinariesConfig  `yaml:"binaries,omitempty"`
	Readiness       ReadinessConfig `yaml:"readiness,omitempty"`
}

// BinariesConfig names the external tools that make up the stack.
type BinariesConfig struct {
	Bridge      string `yaml:"bridge,omitempty"`      // bridge and adapter binary, e.g. "acomm"
	TUI         string `yaml:"tui,omitempty"`         // preferred TUI, e.g. "acomm-tui"
	TUIFallback string `yaml:"tuiFallback,omitempty"` // used when TUI is not in PATH
	Memory      string `yaml:"memory,omitempty"`      // e.g. "amem"
	Scheduler   string `yaml:"scheduler,omitempty"`   // e.g. "abeat"
}

// ReadinessConfig bounds the bridge readiness loop.
type ReadinessConfig struct {
	Attempts     int           `yaml:"attempts,omitempty"`
	Delay        time.Duration `yaml:"delay,omitempty"`
	ProbeTimeout time.Duration `yaml:"probeTimeout,omitempty"`
}
