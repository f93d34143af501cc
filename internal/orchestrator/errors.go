package orchestrator

import "errors"

var (
	// ErrBridgeNotInstalled is returned when the acomm binary is not in PATH.
	ErrBridgeNotInstalled = errors.New("acomm not found in PATH. See https://github.com/yuiseki/acomm for installation instructions")
	// ErrSchedulerNotInstalled is returned when abeat is needed but missing.
	ErrSchedulerNotInstalled = errors.New("abeat not found in PATH")
	// ErrBridgeNotRunning is returned by operations that need a live bridge.
	ErrBridgeNotRunning = errors.New("bridge is not running. Start yuiclaw with `yuiclaw start`")
)
