package app

import (
	"io"

	"yuiclaw/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug enables debug logging.
	Debug bool

	// ConfigPath, when set, replaces the layered config lookup with one file.
	ConfigPath string

	// Out and ErrOut receive command output. Nil means os.Stdout and os.Stderr.
	Out    io.Writer
	ErrOut io.Writer

	// YuiclawConfig is filled in by NewApplication.
	YuiclawConfig *config.YuiclawConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
	}
}
