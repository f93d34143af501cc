package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yuiclaw/internal/process"
	"yuiclaw/pkg/logging"

	"github.com/spf13/afero"
)

var (
	// ErrBridgeSpawnFailed is returned when starting the bridge process fails.
	ErrBridgeSpawnFailed = errors.New("bridge spawn failed")
	// ErrReadinessTimeout is returned when the bridge never accepted a
	// connection within the attempt budget.
	ErrReadinessTimeout = errors.New("bridge not ready")
)

// State is the coordinator's view of the bridge during one attempt.
type State int

const (
	NotRunning State = iota
	// StartingRace means the bridge process exists but its socket does not
	// accept connections yet.
	StartingRace
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case NotRunning:
		return "NotRunning"
	case StartingRace:
		return "StartingRace"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Sleeper pauses between attempts. Tests replace it to avoid real waits.
type Sleeper func(time.Duration)

// Observer is told about every attempt and the state it observed.
type Observer func(attempt int, state State)

// CoordinatorConfig holds the bridge command line and the retry budget.
type CoordinatorConfig struct {
	Binary     string
	Flag       string
	SocketPath string
	Attempts   int
	Delay      time.Duration
}

// Coordinator drives the bridge to a ready state.
type Coordinator struct {
	cfg      CoordinatorConfig
	lister   process.Lister
	prober   Prober
	spawner  process.Spawner
	fs       afero.Fs
	sleep    Sleeper
	observer Observer
}

// CoordinatorOption customizes a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithFs sets the filesystem used to inspect and remove the socket file.
func WithFs(fs afero.Fs) CoordinatorOption {
	return func(c *Coordinator) { c.fs = fs }
}

// WithSleeper replaces time.Sleep between attempts.
func WithSleeper(s Sleeper) CoordinatorOption {
	return func(c *Coordinator) { c.sleep = s }
}

// WithObserver registers a callback invoked once per attempt.
func WithObserver(o Observer) CoordinatorOption {
	return func(c *Coordinator) { c.observer = o }
}

// NewCoordinator creates a Coordinator. Zero Attempts or Delay fall back to
// 20 attempts of 100ms.
func NewCoordinator(cfg CoordinatorConfig, lister process.Lister, prober Prober, spawner process.Spawner, opts ...CoordinatorOption) *Coordinator {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 20
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 100 * time.Millisecond
	}
	if cfg.Flag == "" {
		cfg.Flag = "--bridge"
	}

	c := &Coordinator{
		cfg:     cfg,
		lister:  lister,
		prober:  prober,
		spawner: spawner,
		fs:      afero.NewOsFs(),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureReady returns nil once a bridge process exists and its socket
// accepts a connection.
//
// Every attempt takes a fresh snapshot. When no bridge process is found the
// stale socket file, if any, is removed and a new bridge is spawned; a spawn
// error ends the loop at once. After the last attempt a single direct probe
// decides the result.
//
// The context is passed to the snapshot and the probe. The loop itself is
// bounded by the attempt budget and does not stop early on cancellation.
func (c *Coordinator) EnsureReady(ctx context.Context) error {
	for attempt := 1; attempt <= c.cfg.Attempts; attempt++ {
		snap := process.ReadOrEmpty(ctx, c.lister)

		if snap.HasFlag(c.cfg.Binary, c.cfg.Flag) {
			if err := c.prober.Probe(ctx); err == nil {
				c.observe(attempt, Ready)
				logging.Debug("Coordinator", "Bridge ready after %d attempt(s)", attempt)
				return nil
			}
			c.observe(attempt, StartingRace)
			c.sleep(c.cfg.Delay)
			continue
		}

		c.observe(attempt, NotRunning)
		c.removeStaleSocket()

		if err := c.spawner.Spawn(c.cfg.Binary, c.cfg.Flag); err != nil {
			c.observe(attempt, Failed)
			return fmt.Errorf("%w: %w", ErrBridgeSpawnFailed, err)
		}
		logging.Debug("Coordinator", "Spawned %s %s (attempt %d)", c.cfg.Binary, c.cfg.Flag, attempt)
		c.sleep(c.cfg.Delay)
	}

	if err := c.prober.Probe(ctx); err != nil {
		return fmt.Errorf("%w after %d attempts: %w", ErrReadinessTimeout, c.cfg.Attempts, err)
	}
	logging.Debug("Coordinator", "Bridge ready on final probe")
	return nil
}

func (c *Coordinator) removeStaleSocket() {
	exists, err := afero.Exists(c.fs, c.cfg.SocketPath)
	if err != nil || !exists {
		return
	}
	if err := c.fs.Remove(c.cfg.SocketPath); err != nil {
		logging.Warn("Coordinator", "Failed to remove stale socket %s: %v", c.cfg.SocketPath, err)
		return
	}
	logging.Debug("Coordinator", "Removed stale socket %s", c.cfg.SocketPath)
}

func (c *Coordinator) observe(attempt int, s State) {
	if c.observer != nil {
		c.observer(attempt, s)
	}
}
