package orchestrator

import (
	"context"
	"strings"

	"yuiclaw/internal/process"
	"yuiclaw/internal/reporting"
)

// CollectStatus gathers the status report. It is read-only: it never spawns
// a bridge, never removes a socket and never runs the readiness loop.
func (o *Orchestrator) CollectStatus(ctx context.Context) reporting.Report {
	comps := o.DetectComponents(ctx)
	running := o.BridgeRunning(ctx)
	snap := process.ReadOrEmpty(ctx, o.lister)

	r := reporting.Report{
		Components: o.componentStatuses(comps),
		Bridge:     reporting.BridgeStatus{SocketPath: o.cfg.SocketPath, Running: running},
		Channels:   reporting.ChannelStatuses(o.registry, o.envKeys(), snap, o.cfg.Binaries.Bridge, running),

		SchedulerAvailable: comps.Scheduler,
		MemoryAvailable:    comps.Memory,
	}

	if comps.Scheduler {
		out, err := o.runner.Output(ctx, o.cfg.Binaries.Scheduler, "list")
		if err != nil {
			r.JobsErr = err.Error()
		} else {
			r.Jobs = nonEmptyLines(string(out))
		}
	}

	if comps.Memory {
		out, err := o.runner.Output(ctx, o.cfg.Binaries.Memory, "which")
		if err != nil {
			r.MemoryErr = err.Error()
		} else {
			r.MemoryRoot = strings.TrimSpace(string(out))
		}
	}

	return r
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
