package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultJobs(t *testing.T) {
	jobs := DefaultJobs("acomm", "/tmp/acomm.sock")
	require.Len(t, jobs, 2)

	assert.Equal(t, HeartbeatJobID, jobs[0].ID)
	assert.Equal(t, "30m", jobs[0].Every)
	assert.Equal(t, "HEARTBEAT_OK", jobs[0].NoOpToken)
	assert.Contains(t, jobs[0].Exec, "test -S /tmp/acomm.sock")

	assert.Equal(t, WatchdogJobID, jobs[1].ID)
	assert.Equal(t, "5m", jobs[1].Every)
	assert.Equal(t, "WATCHDOG_OK", jobs[1].NoOpToken)
	assert.Contains(t, jobs[1].Exec, "yuiclaw daemon status --json")
	assert.Contains(t, jobs[1].Exec, ".bridge_running")
}

func TestJob_AddArgs(t *testing.T) {
	args := Job{ID: "x", Description: "d", Every: "1m", Exec: "echo", NoOpToken: "OK"}.AddArgs("/home/yui")
	assert.Equal(t, []string{
		"set", "jobs", "add",
		"--id", "x",
		"--description", "d",
		"--kind", "heartbeat_check",
		"--every", "1m",
		"--agent", "shell",
		"--workspace", "/home/yui",
		"--exec", "echo",
		"--no-op-token", "OK",
	}, args)
}

func TestInitialize_RegistersMissingJobsOnly(t *testing.T) {
	e := newTestEnv(newFakeHost())
	e.runner.errs["abeat get job "+WatchdogJobID] = errors.New("not found")
	o := e.orchestrator(t)

	require.NoError(t, o.Initialize(context.Background()))

	assert.Equal(t, "amem init", e.runner.calls[0])
	assert.Equal(t, "abeat init", e.runner.calls[1])

	var added []string
	for _, c := range e.runner.calls {
		if strings.HasPrefix(c, "abeat set jobs add") {
			added = append(added, c)
		}
	}
	require.Len(t, added, 1)
	assert.Contains(t, added[0], "--id "+WatchdogJobID)
	assert.Contains(t, added[0], "--workspace /home/yui")

	out := e.out.String()
	assert.Contains(t, out, "=== YuiClaw Initialization ===")
	assert.Contains(t, out, HeartbeatJobID+" job already exists")
	assert.Contains(t, out, WatchdogJobID+" job registered")
}

func TestInitialize_ToolsMissing(t *testing.T) {
	e := newTestEnv(newFakeHost())
	e.path["amem"] = false
	e.path["abeat"] = false
	o := e.orchestrator(t)

	require.NoError(t, o.Initialize(context.Background()))
	assert.Empty(t, e.runner.calls)
	assert.Empty(t, e.runner.quiet)
	assert.Contains(t, e.out.String(), "amem not found, skipping")
	assert.Contains(t, e.out.String(), "Skipping job registration without abeat")
}

func TestInitialize_StepFailureContinues(t *testing.T) {
	e := newTestEnv(newFakeHost())
	e.runner.errs["amem init"] = errors.New("exit status 1")
	o := e.orchestrator(t)

	require.NoError(t, o.Initialize(context.Background()))
	assert.Contains(t, e.out.String(), "✗ amem init failed (continuing)")
	assert.Contains(t, e.out.String(), "✓ abeat initialized")
}
