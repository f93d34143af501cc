package process

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Spawner launches long-lived processes that outlive the supervisor.
type Spawner interface {
	Spawn(name string, args ...string) error
}

// DetachedSpawner starts processes in their own session with stdout
// discarded and stderr attached to Stderr, so operators still see failures.
type DetachedSpawner struct {
	// Stderr receives the child's standard error. Defaults to os.Stderr.
	Stderr io.Writer
}

// Spawn starts name with args and releases it without waiting.
func (s DetachedSpawner) Spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = s.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.SysProcAttr = detachedSysProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s (PID %d): %w", name, cmd.Process.Pid, err)
	}
	return nil
}

// Terminate sends SIGTERM to each pid and returns how many were signalled.
func Terminate(pids []int) int {
	signalled := 0
	for _, pid := range pids {
		p, err := os.FindProcess(pid)
		if err != nil {
			continue
		}
		if err := p.Signal(syscall.SIGTERM); err == nil {
			signalled++
		}
	}
	return signalled
}
