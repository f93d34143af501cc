package orchestrator

import (
	"context"
	"fmt"

	"yuiclaw/pkg/logging"
)

// Initialize prepares amem and abeat and registers the default scheduler
// jobs. Missing tools are skipped and failures of individual steps are
// reported without aborting the rest.
func (o *Orchestrator) Initialize(ctx context.Context) error {
	comps := o.DetectComponents(ctx)
	memory, scheduler := o.cfg.Binaries.Memory, o.cfg.Binaries.Scheduler

	fmt.Fprintln(o.out, "=== YuiClaw Initialization ===")
	fmt.Fprintln(o.out)

	if comps.Memory {
		fmt.Fprintf(o.out, "[1/3] Initializing %s...\n", memory)
		o.reportStep(o.runner.Run(ctx, memory, "init"), memory+" initialized", memory+" init failed (continuing)")
	} else {
		fmt.Fprintf(o.out, "[1/3] %s not found, skipping\n", memory)
	}

	if comps.Scheduler {
		fmt.Fprintf(o.out, "[2/3] Initializing %s...\n", scheduler)
		o.reportStep(o.runner.Run(ctx, scheduler, "init"), scheduler+" initialized", scheduler+" init failed (continuing)")

		fmt.Fprintln(o.out, "[3/3] Registering scheduled jobs...")
		home, err := o.homeDir()
		if err != nil {
			logging.Debug("Orchestrator", "Home directory unavailable, using /tmp: %v", err)
			home = "/tmp"
		}
		for _, job := range DefaultJobs(o.cfg.Binaries.Bridge, o.cfg.SocketPath) {
			o.ensureJob(ctx, job, home)
		}
	} else {
		fmt.Fprintf(o.out, "[2/3] %s not found, skipping\n", scheduler)
		fmt.Fprintf(o.out, "[3/3] Skipping job registration without %s\n", scheduler)
	}

	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, "Initialization complete. Run `yuiclaw start` to launch the system.")
	return nil
}

// ensureJob registers job unless the scheduler already knows its id.
func (o *Orchestrator) ensureJob(ctx context.Context, job Job, home string) {
	scheduler := o.cfg.Binaries.Scheduler
	if err := o.runner.RunQuiet(ctx, scheduler, "get", "job", job.ID); err == nil {
		fmt.Fprintf(o.out, "  ✓ %s job already exists\n", job.ID)
		return
	}

	err := o.runner.Run(ctx, scheduler, job.AddArgs(home)...)
	o.reportStep(err, job.ID+" job registered", "failed to register "+job.ID+" job")
}

func (o *Orchestrator) reportStep(err error, ok, failed string) {
	if err != nil {
		logging.Debug("Orchestrator", "%s: %v", failed, err)
		fmt.Fprintf(o.out, "  ✗ %s\n", failed)
		return
	}
	fmt.Fprintf(o.out, "  ✓ %s\n", ok)
}
