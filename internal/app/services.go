package app

import (
	"yuiclaw/internal/orchestrator"
)

// Services holds the initialized services
type Services struct {
	Orchestrator *orchestrator.Orchestrator
}

// InitializeServices creates the orchestrator for the loaded configuration.
// Extra options are applied after the defaults, which lets tests swap out
// host access.
func InitializeServices(cfg *Config, opts ...orchestrator.Option) *Services {
	if cfg.Out != nil && cfg.ErrOut != nil {
		opts = append([]orchestrator.Option{orchestrator.WithOutput(cfg.Out, cfg.ErrOut)}, opts...)
	}
	return &Services{
		Orchestrator: orchestrator.New(*cfg.YuiclawConfig, opts...),
	}
}
