package app

import (
	"fmt"
	"os"

	"yuiclaw/internal/config"
	"yuiclaw/pkg/logging"
)

// Application is the bootstrapped yuiclaw runtime shared by all commands.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication configures logging, loads ~/.config/yuiclaw/.env and the
// layered configuration, then wires the services.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(cfg.LogLevel(), os.Stderr)

	if path, err := config.LoadDotenv(); err != nil {
		logging.Warn("Bootstrap", "Ignoring dotenv file: %v", err)
	} else if path != "" {
		logging.Debug("Bootstrap", "Loaded environment from %s", path)
	}

	var yuiclawCfg config.YuiclawConfig
	var err error
	if cfg.ConfigPath != "" {
		yuiclawCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load yuiclaw configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		yuiclawCfg, err = config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load yuiclaw configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.YuiclawConfig = &yuiclawCfg

	return &Application{
		config:   cfg,
		services: InitializeServices(cfg),
	}, nil
}

// LogLevel returns the level selected by the debug flag.
func (c *Config) LogLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Services returns the wired services.
func (a *Application) Services() *Services {
	return a.services
}
