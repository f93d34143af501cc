package orchestrator

import (
	"context"
	"testing"

	"yuiclaw/internal/bridge"
	"yuiclaw/internal/reporting"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaemonStart_BridgeAndAdapters(t *testing.T) {
	e := newTestEnv(newFakeHost())
	e.env["DISCORD_BOT_TOKEN"] = "token"
	o := e.orchestrator(t)

	require.NoError(t, o.DaemonStart(context.Background()))
	assert.Equal(t, []string{"acomm --bridge", "acomm --discord"}, e.host.spawnedCommands())
	assert.Contains(t, e.out.String(), "Bridge is ready (/tmp/acomm.sock)")
	assert.Contains(t, e.out.String(), "Daemon started.")
	assert.Empty(t, e.execs, "daemon mode never launches the TUI")
}

func TestDaemonStart_WithoutCredentialsStillStartsBridge(t *testing.T) {
	e := newTestEnv(newFakeHost())
	o := e.orchestrator(t)

	require.NoError(t, o.DaemonStart(context.Background()))
	assert.Equal(t, []string{"acomm --bridge"}, e.host.spawnedCommands())
}

func TestDaemonStart_FailsWhenBridgeNotReady(t *testing.T) {
	host := newFakeHost()
	host.bridgeNeverListens = true
	e := newTestEnv(host)
	e.env["DISCORD_BOT_TOKEN"] = "token"
	o := e.orchestrator(t)

	err := o.DaemonStart(context.Background())
	assert.ErrorIs(t, err, bridge.ErrReadinessTimeout)
	assert.NotContains(t, host.spawnedCommands(), "acomm --discord")
}

func TestDaemonStart_RequiresBridgeBinary(t *testing.T) {
	e := newTestEnv(newFakeHost())
	e.path["acomm"] = false
	o := e.orchestrator(t)

	assert.ErrorIs(t, o.DaemonStart(context.Background()), ErrBridgeNotInstalled)
}

func TestDaemonStop(t *testing.T) {
	host := newFakeHost("10 acomm acomm --bridge", "11 acomm acomm --discord", "12 acomm acomm --slack")
	e := newTestEnv(host)
	require.NoError(t, afero.WriteFile(e.fs, "/tmp/acomm.sock", nil, 0o600))
	o := e.orchestrator(t)

	require.NoError(t, o.DaemonStop(context.Background()))

	assert.ElementsMatch(t, []int{10, 11, 12}, host.terminated)
	assert.Contains(t, e.out.String(), "Stopped acomm adapter: Discord")
	assert.Contains(t, e.out.String(), "Stopped acomm adapter: Slack")
	assert.Contains(t, e.out.String(), "Bridge stopped.")
}

func TestDaemonRestart_BridgeRemovesOwnSocket(t *testing.T) {
	host := newFakeHost("10 acomm acomm --bridge")
	e := newTestEnv(host)
	require.NoError(t, afero.WriteFile(e.fs, "/tmp/acomm.sock", nil, 0o600))
	host.onTerminate = func() { _ = e.fs.Remove("/tmp/acomm.sock") }
	o := e.orchestrator(t)

	require.NoError(t, o.DaemonRestart(context.Background()))

	assert.Equal(t, []int{10}, host.terminated)
	assert.Equal(t, []string{"acomm --bridge"}, host.spawnedCommands())
	assert.Contains(t, e.out.String(), "Bridge stopped.")
	assert.Contains(t, e.out.String(), "Daemon started.")
}

func TestDaemonStatus(t *testing.T) {
	tests := []struct {
		name  string
		procs []string
		env   map[string]string
		want  reporting.DaemonStatus
	}{
		{
			name: "nothing configured and bridge down",
			want: reporting.DaemonStatus{BridgeRunning: false, Channels: []reporting.ChannelStatus{}},
		},
		{
			name:  "configured channel without adapter",
			procs: []string{"10 acomm acomm --bridge"},
			env:   map[string]string{"NTFY_TOPIC": "alerts"},
			want: reporting.DaemonStatus{
				BridgeRunning: true,
				Channels:      []reporting.ChannelStatus{{Label: "ntfy", Connected: false}},
			},
		},
		{
			name:  "adapter running but bridge down",
			procs: []string{"11 acomm acomm --ntfy"},
			env:   map[string]string{"NTFY_TOPIC": "alerts"},
			want: reporting.DaemonStatus{
				BridgeRunning: false,
				Channels:      []reporting.ChannelStatus{{Label: "ntfy", Connected: false}},
			},
		},
		{
			name:  "all connected",
			procs: []string{"10 acomm acomm --bridge", "11 acomm acomm --ntfy"},
			env:   map[string]string{"NTFY_TOPIC": "alerts"},
			want: reporting.DaemonStatus{
				BridgeRunning: true,
				Channels:      []reporting.ChannelStatus{{Label: "ntfy", Connected: true}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost(tt.procs...)
			e := newTestEnv(host)
			for k, v := range tt.env {
				e.env[k] = v
			}
			o := e.orchestrator(t)

			got := o.DaemonStatus(context.Background())
			assert.Equal(t, tt.want, got)
			assert.Empty(t, host.spawnedCommands(), "status never spawns")
		})
	}
}
