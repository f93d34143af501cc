package orchestrator

import (
	"context"
	"fmt"

	"yuiclaw/internal/process"
	"yuiclaw/internal/reporting"
	"yuiclaw/pkg/logging"
)

// DaemonStart brings up the headless stack: the bridge plus every configured
// channel adapter. Unlike StartStack it fails when the bridge is not ready.
func (o *Orchestrator) DaemonStart(ctx context.Context) error {
	if !o.lookPath(o.cfg.Binaries.Bridge) {
		return ErrBridgeNotInstalled
	}

	if err := o.newCoordinator().EnsureReady(ctx); err != nil {
		return fmt.Errorf("failed to start bridge: %w", err)
	}
	fmt.Fprintf(o.out, "Bridge is ready (%s)\n", o.cfg.SocketPath)

	snap := process.ReadOrEmpty(ctx, o.lister)
	candidates := o.registry.Candidates(o.envKeys(), snap, o.cfg.Binaries.Bridge)
	o.launch(ctx, candidates)

	fmt.Fprintln(o.out, "Daemon started.")
	return nil
}

// DaemonStop terminates every adapter process, then the bridge.
func (o *Orchestrator) DaemonStop(ctx context.Context) error {
	snap := process.ReadOrEmpty(ctx, o.lister)
	for _, spec := range o.registry.Specs() {
		pids := snap.PIDsWithFlag(o.cfg.Binaries.Bridge, spec.LaunchFlag)
		if len(pids) == 0 {
			continue
		}
		if n := o.terminate(pids); n > 0 {
			fmt.Fprintf(o.out, "Stopped %s adapter: %s\n", o.cfg.Binaries.Bridge, spec.Label)
		} else {
			logging.Warn("Orchestrator", "Could not signal %s adapter (pids %v)", spec.Label, pids)
		}
	}
	return o.StopBridge(ctx)
}

// DaemonRestart runs DaemonStop followed by DaemonStart.
func (o *Orchestrator) DaemonRestart(ctx context.Context) error {
	if err := o.DaemonStop(ctx); err != nil {
		return err
	}
	return o.DaemonStart(ctx)
}

// DaemonStatus reports bridge liveness and the connection state of each
// configured channel. It never starts or stops anything.
func (o *Orchestrator) DaemonStatus(ctx context.Context) reporting.DaemonStatus {
	running := o.BridgeRunning(ctx)
	snap := process.ReadOrEmpty(ctx, o.lister)
	return reporting.DaemonStatus{
		BridgeRunning: running,
		Channels:      reporting.ChannelStatuses(o.registry, o.envKeys(), snap, o.cfg.Binaries.Bridge, running),
	}
}
