package adapters

import (
	"context"
	"errors"
	"fmt"

	"yuiclaw/internal/process"
	"yuiclaw/pkg/logging"
)

// ErrAdapterSpawnFailed wraps a failure to start one adapter process.
var ErrAdapterSpawnFailed = errors.New("adapter spawn failed")

// LaunchOutcome is what happened to a single launch candidate.
type LaunchOutcome string

const (
	LaunchStarted LaunchOutcome = "started"
	// LaunchSkipped means the adapter appeared in the process table between
	// the initial filter and the launch.
	LaunchSkipped LaunchOutcome = "skipped"
	LaunchFailed  LaunchOutcome = "failed"
)

// LaunchResult reports the outcome for one adapter.
type LaunchResult struct {
	Spec    ChannelAdapterSpec
	Outcome LaunchOutcome
	Err     error
}

// Launcher starts adapter processes as detached children of the bridge binary.
type Launcher struct {
	binary  string
	lister  process.Lister
	spawner process.Spawner
}

// NewLauncher creates a Launcher that starts `binary <flag>` for each adapter.
func NewLauncher(binary string, lister process.Lister, spawner process.Spawner) *Launcher {
	return &Launcher{binary: binary, lister: lister, spawner: spawner}
}

// Launch re-reads the process table once and starts every candidate that is
// still not running. A failed spawn is recorded and the remaining
// candidates are still attempted.
//
// The re-read narrows the window for duplicates but is not a lock: two
// supervisors racing through Launch can both start the same adapter.
func (l *Launcher) Launch(ctx context.Context, candidates []ChannelAdapterSpec) []LaunchResult {
	if len(candidates) == 0 {
		return nil
	}

	latest := process.ReadOrEmpty(ctx, l.lister)
	results := make([]LaunchResult, 0, len(candidates))

	for _, spec := range candidates {
		if latest.HasFlag(l.binary, spec.LaunchFlag) {
			logging.Debug("Launcher", "Adapter %s (%s) already running, not starting another", spec.Label, spec.LaunchFlag)
			results = append(results, LaunchResult{Spec: spec, Outcome: LaunchSkipped})
			continue
		}

		if err := l.spawner.Spawn(l.binary, spec.LaunchFlag); err != nil {
			wrapped := fmt.Errorf("%w: %w", ErrAdapterSpawnFailed, err)
			logging.Debug("Launcher", "Spawning %s %s failed: %v", l.binary, spec.LaunchFlag, err)
			results = append(results, LaunchResult{Spec: spec, Outcome: LaunchFailed, Err: wrapped})
			continue
		}

		logging.Debug("Launcher", "Spawned %s %s for %s", l.binary, spec.LaunchFlag, spec.Label)
		results = append(results, LaunchResult{Spec: spec, Outcome: LaunchStarted})
	}

	return results
}
