package app

import (
	"context"
	"time"

	"yuiclaw/internal/color"
	"yuiclaw/internal/reporting"
	"yuiclaw/internal/tui"
)

// RunStatusWatch shows the live status view until the user quits.
func (a *Application) RunStatusWatch(ctx context.Context, interval time.Duration) error {
	color.Initialize(true)
	source := func(ctx context.Context) reporting.Report {
		return a.services.Orchestrator.CollectStatus(ctx)
	}
	return tui.Run(ctx, source, interval, a.config.LogLevel())
}
