package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"yuiclaw/internal/process"
	"yuiclaw/pkg/logging"

	"github.com/spf13/afero"
)

// newSessionSettle is how long the bridge gets to process /clear before the
// TUI attaches.
const newSessionSettle = 200 * time.Millisecond

// StartStack prepares the stack and replaces the current process with the TUI.
//
// acomm must be in PATH. amem and abeat are initialized quietly when present.
// Configured channel adapters are auto-started; a bridge that never becomes
// ready only produces a warning. On unix a successful exec never returns.
func (o *Orchestrator) StartStack(ctx context.Context, provider string) error {
	comps := o.DetectComponents(ctx)
	if !comps.Bridge {
		return ErrBridgeNotInstalled
	}

	if comps.Memory {
		o.quietInit(ctx, o.cfg.Binaries.Memory)
	}
	if comps.Scheduler {
		o.quietInit(ctx, o.cfg.Binaries.Scheduler)
	}

	// Readiness failures are already reported as a warning.
	_, _ = o.AutoStartAdapters(ctx)

	fmt.Fprintln(o.errOut, "Starting YuiClaw...")
	fmt.Fprintf(o.errOut, "Memory: %s\n", o.memoryRoot())

	tui := o.cfg.Binaries.TUIFallback
	if o.lookPath(o.cfg.Binaries.TUI) {
		tui = o.cfg.Binaries.TUI
	}
	fmt.Fprintf(o.errOut, "Launching %s... (press q to quit)\n", tui)

	if !o.isTTY() {
		logging.Warn("Orchestrator", "stdin is not a terminal; %s may not render correctly", tui)
	}

	if err := o.execFn(tui, "--provider", provider); err != nil {
		return fmt.Errorf("failed to exec %s: %w", tui, err)
	}
	return nil
}

// StartWithOptions starts the stack with provider. When newSession is set and
// the bridge is running, the current session is cleared first.
func (o *Orchestrator) StartWithOptions(ctx context.Context, provider string, newSession bool) error {
	if newSession && o.BridgeRunning(ctx) {
		if err := o.runner.RunQuiet(ctx, o.cfg.Binaries.Bridge, "--publish", "/clear"); err != nil {
			logging.Debug("Orchestrator", "Clearing session before start failed: %v", err)
		}
		o.sleep(newSessionSettle)
	}
	return o.StartStack(ctx, provider)
}

// StopBridge terminates every bridge process and removes the socket file.
// A missing socket file means there is nothing to stop.
func (o *Orchestrator) StopBridge(ctx context.Context) error {
	socket := o.cfg.SocketPath
	exists, err := afero.Exists(o.fs, socket)
	if err != nil {
		return fmt.Errorf("failed to check socket %s: %w", socket, err)
	}
	if !exists {
		fmt.Fprintln(o.out, "Bridge is not running.")
		return nil
	}

	snap := process.ReadOrEmpty(ctx, o.lister)
	pids := snap.PIDsWithFlag(o.cfg.Binaries.Bridge, bridgeFlag)
	if o.terminate(pids) == 0 {
		fmt.Fprintln(o.out, "Bridge process not found; cleaning up socket...")
	}

	// A bridge shutting down on SIGTERM may unlink the socket itself.
	if err := o.fs.Remove(socket); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove socket %s: %w", socket, err)
		}
	} else {
		fmt.Fprintf(o.out, "Removed socket: %s\n", socket)
	}
	fmt.Fprintln(o.out, "Bridge stopped.")
	return nil
}

// Restart stops the bridge and starts the stack with the default provider.
func (o *Orchestrator) Restart(ctx context.Context) error {
	if err := o.StopBridge(ctx); err != nil {
		return err
	}
	return o.StartStack(ctx, o.cfg.DefaultProvider)
}

func (o *Orchestrator) quietInit(ctx context.Context, binary string) {
	if err := o.runner.RunQuiet(ctx, binary, "init"); err != nil {
		logging.Debug("Orchestrator", "%s init failed: %v", binary, err)
	}
}

func (o *Orchestrator) memoryRoot() string {
	if root := o.getenv("AMEM_ROOT"); root != "" {
		return root + " (AMEM_ROOT)"
	}
	return "~/.amem (default)"
}
