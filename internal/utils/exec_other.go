//go:build !unix

package utils

import (
	"fmt"
	"os"
	"os/exec"
)

// ExecReplace runs name in the foreground and waits for it, since the
// platform has no exec(2).
func ExecReplace(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited with error: %w", name, err)
	}
	return nil
}
