package orchestrator

import (
	"context"

	"yuiclaw/internal/reporting"

	"github.com/sourcegraph/conc"
)

// Components records which sibling tools resolve in PATH.
type Components struct {
	Memory    bool
	Scheduler bool
	Bridge    bool
}

// DetectComponents looks up amem, abeat and acomm concurrently.
func (o *Orchestrator) DetectComponents(ctx context.Context) Components {
	var c Components
	var wg conc.WaitGroup
	wg.Go(func() { c.Memory = o.lookPath(o.cfg.Binaries.Memory) })
	wg.Go(func() { c.Scheduler = o.lookPath(o.cfg.Binaries.Scheduler) })
	wg.Go(func() { c.Bridge = o.lookPath(o.cfg.Binaries.Bridge) })
	wg.Wait()
	return c
}

func (o *Orchestrator) componentStatuses(c Components) []reporting.ComponentStatus {
	return []reporting.ComponentStatus{
		{Name: o.cfg.Binaries.Memory, Available: c.Memory},
		{Name: o.cfg.Binaries.Scheduler, Available: c.Scheduler},
		{Name: o.cfg.Binaries.Bridge, Available: c.Bridge},
	}
}

// BridgeRunning reports whether the bridge socket accepts a connection.
// A socket file that exists but refuses connections counts as not running.
func (o *Orchestrator) BridgeRunning(ctx context.Context) bool {
	return o.prober.Probe(ctx) == nil
}
