package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"yuiclaw/internal/adapters"
	"yuiclaw/internal/config"
	"yuiclaw/internal/process"

	"github.com/spf13/afero"
)

var errRefused = errors.New("connection refused")

// fakeHost simulates the process table and the bridge socket. Spawned
// processes appear in later snapshots and a spawned bridge accepts
// connections unless bridgeNeverListens is set.
type fakeHost struct {
	mu sync.Mutex

	procs   []process.Record
	nextPID int

	spawned  []string
	spawnErr map[string]error // keyed by the first argument, e.g. "--bridge"

	bridgeNeverListens bool
	// probeFailures is the number of probes that fail even when the bridge runs.
	probeFailures int
	probes        int

	terminated []int
	// onTerminate runs after pids are signalled, outside the lock.
	onTerminate func()
}

func newFakeHost(lines ...string) *fakeHost {
	h := &fakeHost{nextPID: 1000, spawnErr: map[string]error{}}
	for _, l := range lines {
		if r, ok := process.ParseLine(l); ok {
			h.procs = append(h.procs, r)
		}
	}
	return h
}

func (h *fakeHost) List(ctx context.Context) (process.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append(process.Snapshot(nil), h.procs...), nil
}

func (h *fakeHost) Spawn(name string, args ...string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	cmd := strings.TrimSpace(name + " " + strings.Join(args, " "))
	h.spawned = append(h.spawned, cmd)
	if len(args) > 0 {
		if err := h.spawnErr[args[0]]; err != nil {
			return err
		}
	}
	h.nextPID++
	h.procs = append(h.procs, process.Record{PID: h.nextPID, Executable: name, Args: cmd})
	return nil
}

func (h *fakeHost) Probe(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.probes++
	if h.bridgeNeverListens || h.probes <= h.probeFailures {
		return errRefused
	}
	if process.Snapshot(h.procs).HasFlag("acomm", "--bridge") {
		return nil
	}
	return errRefused
}

func (h *fakeHost) Terminate(pids []int) int {
	if h.onTerminate != nil {
		defer h.onTerminate()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.terminated = append(h.terminated, pids...)
	kill := map[int]bool{}
	for _, p := range pids {
		kill[p] = true
	}
	var kept []process.Record
	for _, r := range h.procs {
		if !kill[r.PID] {
			kept = append(kept, r)
		}
	}
	h.procs = kept
	return len(pids)
}

func (h *fakeHost) spawnedCommands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.spawned...)
}

// fakeRunner records tool invocations as "name arg..." strings.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []string
	quiet   []string
	errs    map[string]error
	outputs map[string]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{errs: map[string]error{}, outputs: map[string]string{}}
}

func key(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(name, args)
	r.calls = append(r.calls, k)
	return r.errs[k]
}

func (r *fakeRunner) RunQuiet(ctx context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(name, args)
	r.quiet = append(r.quiet, k)
	return r.errs[k]
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key(name, args)
	r.calls = append(r.calls, k)
	if err := r.errs[k]; err != nil {
		return nil, err
	}
	return []byte(r.outputs[k]), nil
}

type execCall struct {
	name string
	args []string
}

type testEnv struct {
	host   *fakeHost
	runner *fakeRunner
	fs     afero.Fs
	out    *bytes.Buffer
	errOut *bytes.Buffer
	sleeps []time.Duration
	execs  []execCall
	env    map[string]string
	path   map[string]bool
	// configure adjusts the default config before the orchestrator is built.
	configure func(*config.YuiclawConfig)
}

func newTestEnv(host *fakeHost) *testEnv {
	return &testEnv{
		host:   host,
		runner: newFakeRunner(),
		fs:     afero.NewMemMapFs(),
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		env:    map[string]string{},
		path:   map[string]bool{"acomm": true, "acomm-tui": true, "amem": true, "abeat": true},
	}
}

func (e *testEnv) orchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	cfg := config.GetDefaultConfig()
	cfg.Readiness.Attempts = 5
	if e.configure != nil {
		e.configure(&cfg)
	}

	return New(cfg,
		WithLister(e.host),
		WithProber(e.host),
		WithSpawner(e.host),
		WithTerminator(e.host.Terminate),
		WithRunner(e.runner),
		WithFs(e.fs),
		WithSleeper(func(d time.Duration) { e.sleeps = append(e.sleeps, d) }),
		WithLookPath(func(name string) bool { return e.path[name] }),
		WithExec(func(name string, args ...string) error {
			e.execs = append(e.execs, execCall{name: name, args: args})
			return nil
		}),
		WithTerminal(func() bool { return true }),
		WithEnv(func() adapters.EnvKeys {
			var environ []string
			for k, v := range e.env {
				environ = append(environ, k+"="+v)
			}
			return adapters.EnvKeysFromEnviron(environ)
		}),
		WithGetenv(func(k string) string { return e.env[k] }),
		WithHomeDir(func() (string, error) { return "/home/yui", nil }),
		WithOutput(e.out, e.errOut),
	)
}
