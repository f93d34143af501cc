package process

import (
	"context"
	"errors"
	"fmt"

	"yuiclaw/internal/utils"
	"yuiclaw/pkg/logging"
)

// ErrSnapshotUnavailable is returned when the process table cannot be read,
// for example because `ps` is missing or exits non-zero.
var ErrSnapshotUnavailable = errors.New("process snapshot unavailable")

// Lister captures the current process table. Implementations backed by a
// native process API can replace PSLister without touching matching logic.
type Lister interface {
	List(ctx context.Context) (Snapshot, error)
}

// PSLister reads the process table through `ps`.
type PSLister struct {
	runner utils.CommandRunner
}

// NewPSLister creates a PSLister that executes `ps` through runner.
func NewPSLister(runner utils.CommandRunner) *PSLister {
	if runner == nil {
		runner = utils.ExecRunner{}
	}
	return &PSLister{runner: runner}
}

// List runs `ps -eo pid=,comm=,args=` and parses its output.
func (l *PSLister) List(ctx context.Context) (Snapshot, error) {
	out, err := l.runner.Output(ctx, "ps", "-eo", "pid=,comm=,args=")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}
	return ParseSnapshot(string(out)), nil
}

// ReadOrEmpty lists processes and degrades any failure to an empty snapshot.
// Absence of evidence that something runs is the conservative answer here.
func ReadOrEmpty(ctx context.Context, l Lister) Snapshot {
	snap, err := l.List(ctx)
	if err != nil {
		logging.Debug("Process", "Treating process table as empty: %v", err)
		return Snapshot{}
	}
	return snap
}
