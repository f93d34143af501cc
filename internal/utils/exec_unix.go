//go:build unix

package utils

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// ExecReplace replaces the current process image with name, like exec(2).
// It only returns on failure.
func ExecReplace(name string, args ...string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return err
	}
	argv := append([]string{name}, args...)
	if err := syscall.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
