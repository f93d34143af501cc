package orchestrator

import (
	"io"
	"os"
	"time"

	"yuiclaw/internal/adapters"
	"yuiclaw/internal/bridge"
	"yuiclaw/internal/config"
	"yuiclaw/internal/process"
	"yuiclaw/internal/utils"

	"github.com/spf13/afero"
	"golang.org/x/term"
)

const bridgeFlag = "--bridge"

// Orchestrator runs the yuiclaw command flows.
type Orchestrator struct {
	cfg      config.YuiclawConfig
	registry *adapters.Registry

	lister    process.Lister
	prober    bridge.Prober
	spawner   process.Spawner
	runner    utils.CommandRunner
	fs        afero.Fs
	sleep     bridge.Sleeper
	terminate func(pids []int) int

	lookPath func(name string) bool
	execFn   func(name string, args ...string) error
	isTTY    func() bool
	envKeys  func() adapters.EnvKeys
	getenv   func(key string) string
	homeDir  func() (string, error)

	out    io.Writer
	errOut io.Writer
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithRegistry replaces the default channel adapter registry.
func WithRegistry(r *adapters.Registry) Option { return func(o *Orchestrator) { o.registry = r } }

// WithLister replaces the `ps` backed process lister.
func WithLister(l process.Lister) Option { return func(o *Orchestrator) { o.lister = l } }

// WithProber replaces the unix socket prober.
func WithProber(p bridge.Prober) Option { return func(o *Orchestrator) { o.prober = p } }

// WithSpawner replaces the detached process spawner.
func WithSpawner(s process.Spawner) Option { return func(o *Orchestrator) { o.spawner = s } }

// WithRunner replaces the runner used for short-lived tool invocations.
func WithRunner(r utils.CommandRunner) Option { return func(o *Orchestrator) { o.runner = r } }

// WithFs replaces the filesystem used for the socket file.
func WithFs(fs afero.Fs) Option { return func(o *Orchestrator) { o.fs = fs } }

// WithSleeper replaces time.Sleep.
func WithSleeper(s bridge.Sleeper) Option { return func(o *Orchestrator) { o.sleep = s } }

// WithTerminator replaces the function that signals bridge and adapter pids.
func WithTerminator(fn func(pids []int) int) Option {
	return func(o *Orchestrator) { o.terminate = fn }
}

// WithLookPath replaces the PATH lookup.
func WithLookPath(fn func(name string) bool) Option { return func(o *Orchestrator) { o.lookPath = fn } }

// WithExec replaces the exec into the TUI.
func WithExec(fn func(name string, args ...string) error) Option {
	return func(o *Orchestrator) { o.execFn = fn }
}

// WithTerminal replaces the stdin TTY check.
func WithTerminal(fn func() bool) Option { return func(o *Orchestrator) { o.isTTY = fn } }

// WithEnv replaces the scan of the process environment for credentials.
func WithEnv(fn func() adapters.EnvKeys) Option { return func(o *Orchestrator) { o.envKeys = fn } }

// WithGetenv replaces os.Getenv.
func WithGetenv(fn func(string) string) Option { return func(o *Orchestrator) { o.getenv = fn } }

// WithHomeDir replaces os.UserHomeDir.
func WithHomeDir(fn func() (string, error)) Option { return func(o *Orchestrator) { o.homeDir = fn } }

// WithOutput sets where human output goes. out receives command results and
// errOut receives progress and warnings.
func WithOutput(out, errOut io.Writer) Option {
	return func(o *Orchestrator) {
		o.out = out
		o.errOut = errOut
	}
}

// New creates an Orchestrator wired to the real host unless options say otherwise.
func New(cfg config.YuiclawConfig, opts ...Option) *Orchestrator {
	runner := utils.ExecRunner{}
	o := &Orchestrator{
		cfg:       cfg,
		registry:  adapters.DefaultRegistry(),
		lister:    process.NewPSLister(runner),
		prober:    bridge.NewUnixSocketProber(cfg.SocketPath, cfg.Readiness.ProbeTimeout),
		spawner:   process.DetachedSpawner{},
		runner:    runner,
		fs:        afero.NewOsFs(),
		sleep:     time.Sleep,
		terminate: process.Terminate,
		lookPath:  utils.LookPath,
		execFn:    utils.ExecReplace,
		isTTY:     func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		envKeys:   adapters.PresentEnvKeys,
		getenv:    os.Getenv,
		homeDir:   os.UserHomeDir,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Config returns the configuration the orchestrator was built with.
func (o *Orchestrator) Config() config.YuiclawConfig {
	return o.cfg
}

func (o *Orchestrator) newCoordinator() *bridge.Coordinator {
	return bridge.NewCoordinator(
		bridge.CoordinatorConfig{
			Binary:     o.cfg.Binaries.Bridge,
			Flag:       bridgeFlag,
			SocketPath: o.cfg.SocketPath,
			Attempts:   o.cfg.Readiness.Attempts,
			Delay:      o.cfg.Readiness.Delay,
		},
		o.lister, o.prober, o.spawner,
		bridge.WithFs(o.fs),
		bridge.WithSleeper(o.sleep),
	)
}
