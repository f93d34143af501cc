package utils

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CommandRunner runs short-lived external commands such as `ps`, `amem init`
// or `acomm --publish`. It exists so callers can be tested without spawning
// real processes.
type CommandRunner interface {
	// Run executes the command attached to the supervisor's stdio.
	Run(ctx context.Context, name string, args ...string) error
	// RunQuiet executes the command with stdout and stderr discarded.
	RunQuiet(ctx context.Context, name string, args ...string) error
	// Output executes the command and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner is the os/exec backed CommandRunner.
type ExecRunner struct{}

// Run executes name with args, inheriting stdin, stdout and stderr.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("'%s %s' failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// RunQuiet executes name with args and discards all output.
func (ExecRunner) RunQuiet(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("'%s %s' failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Output executes name with args and returns stdout.
// The error includes stderr for better diagnostics.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("'%s %s' failed: %w. Stderr: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

// LookPath reports whether name resolves to an executable in PATH.
func LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
