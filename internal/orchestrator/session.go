package orchestrator

import (
	"context"
	"fmt"
)

// Publish sends message to the running bridge, optionally on channel.
func (o *Orchestrator) Publish(ctx context.Context, message, channel string) error {
	if !o.BridgeRunning(ctx) {
		return ErrBridgeNotRunning
	}

	args := []string{"--publish", message}
	if channel != "" {
		args = append(args, "--channel", channel)
	}
	if err := o.runner.Run(ctx, o.cfg.Binaries.Bridge, args...); err != nil {
		return fmt.Errorf("failed to publish message to bridge: %w", err)
	}
	return nil
}

// Reset clears the active session by publishing /clear. With no bridge
// running there is no session and Reset only says so.
func (o *Orchestrator) Reset(ctx context.Context) error {
	if !o.BridgeRunning(ctx) {
		fmt.Fprintln(o.out, "No active session (bridge is not running).")
		return nil
	}

	if err := o.runner.Run(ctx, o.cfg.Binaries.Bridge, "--publish", "/clear"); err != nil {
		return fmt.Errorf("failed to send reset command to bridge: %w", err)
	}
	fmt.Fprintln(o.out, "Session reset.")
	return nil
}

// Tick runs the scheduler's due jobs once.
func (o *Orchestrator) Tick(ctx context.Context) error {
	if !o.lookPath(o.cfg.Binaries.Scheduler) {
		return ErrSchedulerNotInstalled
	}
	if err := o.runner.Run(ctx, o.cfg.Binaries.Scheduler, "tick", "--due"); err != nil {
		return fmt.Errorf("%s tick failed: %w", o.cfg.Binaries.Scheduler, err)
	}
	return nil
}
