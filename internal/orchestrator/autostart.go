package orchestrator

import (
	"context"
	"fmt"

	"yuiclaw/internal/adapters"
	"yuiclaw/internal/process"
	"yuiclaw/pkg/logging"
)

// AutoStartAdapters starts an adapter process for every channel whose
// credentials are present and whose adapter is not already running.
//
// The bridge is made ready first. If that fails no adapter is started and
// the readiness error is returned; callers treat it as a warning. When no
// adapter needs starting the bridge is left alone.
func (o *Orchestrator) AutoStartAdapters(ctx context.Context) ([]adapters.LaunchResult, error) {
	keys := o.envKeys()
	snap := process.ReadOrEmpty(ctx, o.lister)

	candidates := o.registry.Candidates(keys, snap, o.cfg.Binaries.Bridge)
	if len(candidates) == 0 {
		logging.Debug("Orchestrator", "No channel adapters need starting")
		return nil, nil
	}

	if err := o.newCoordinator().EnsureReady(ctx); err != nil {
		fmt.Fprintln(o.errOut, "Warning: bridge was not ready; skipping auto-start for configured channel adapters.")
		logging.Debug("Orchestrator", "Bridge readiness failed: %v", err)
		return nil, err
	}

	return o.launch(ctx, candidates), nil
}

// launch starts candidates and prints one line per started or failed adapter.
func (o *Orchestrator) launch(ctx context.Context, candidates []adapters.ChannelAdapterSpec) []adapters.LaunchResult {
	launcher := adapters.NewLauncher(o.cfg.Binaries.Bridge, o.lister, o.spawner)
	results := launcher.Launch(ctx, candidates)

	for _, r := range results {
		switch r.Outcome {
		case adapters.LaunchStarted:
			fmt.Fprintf(o.errOut, "Auto-started %s adapter: %s\n", o.cfg.Binaries.Bridge, r.Spec.Label)
		case adapters.LaunchFailed:
			fmt.Fprintf(o.errOut, "Warning: failed to auto-start %s adapter %s (%s): %v\n",
				o.cfg.Binaries.Bridge, r.Spec.Label, r.Spec.LaunchFlag, r.Err)
		}
	}
	return results
}
