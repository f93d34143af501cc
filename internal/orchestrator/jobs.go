package orchestrator

import (
	"fmt"
	"strings"
)

const (
	HeartbeatJobID = "yuiclaw-heartbeat"
	WatchdogJobID  = "yuiclaw-daemon-watchdog"
)

// Job is a recurring scheduler job registered by `yuiclaw init`.
type Job struct {
	ID          string
	Description string
	Every       string
	Exec        string
	NoOpToken   string
}

// AddArgs returns the scheduler arguments that register the job with
// workspace as its working directory.
func (j Job) AddArgs(workspace string) []string {
	return []string{
		"set", "jobs", "add",
		"--id", j.ID,
		"--description", j.Description,
		"--kind", "heartbeat_check",
		"--every", j.Every,
		"--agent", "shell",
		"--workspace", workspace,
		"--exec", j.Exec,
		"--no-op-token", j.NoOpToken,
	}
}

// DefaultJobs returns the heartbeat and daemon watchdog jobs.
// The heartbeat publishes a proactive prompt when the bridge socket exists.
// The watchdog restarts the daemon when the bridge is down or any configured
// channel is disconnected, based on `yuiclaw daemon status --json`.
func DefaultJobs(bridgeBinary, socketPath string) []Job {
	heartbeat := strings.Join([]string{
		fmt.Sprintf("if command -v %s >/dev/null 2>&1 && test -S %s; then", bridgeBinary, socketPath),
		fmt.Sprintf("  %s --publish 'Proactive heartbeat: review recent amem activities and provide a brief status update.' --channel heartbeat 2>/dev/null;", bridgeBinary),
		"else",
		"  echo HEARTBEAT_OK;",
		"fi",
	}, " ")

	watchdog := strings.Join([]string{
		"STATUS=$(yuiclaw daemon status --json 2>/dev/null);",
		"if [ $? -ne 0 ]; then yuiclaw daemon restart; exit 0; fi;",
		`BRIDGE_RUNNING=$(echo "$STATUS" | jq -r '.bridge_running');`,
		`if [ "$BRIDGE_RUNNING" != "true" ]; then yuiclaw daemon restart; exit 0; fi;`,
		`DISCONNECTED_CHANNELS=$(echo "$STATUS" | jq -r '.channels[] | select(.connected == false) | .label');`,
		`if [ -n "$DISCONNECTED_CHANNELS" ]; then yuiclaw daemon restart; exit 0; fi;`,
		"echo WATCHDOG_OK;",
	}, " ")

	return []Job{
		{
			ID:          HeartbeatJobID,
			Description: "YuiClaw proactive check every 30 minutes",
			Every:       "30m",
			Exec:        heartbeat,
			NoOpToken:   "HEARTBEAT_OK",
		},
		{
			ID:          WatchdogJobID,
			Description: "YuiClaw daemon watchdog (every 5 minutes)",
			Every:       "5m",
			Exec:        watchdog,
			NoOpToken:   "WATCHDOG_OK",
		},
	}
}
