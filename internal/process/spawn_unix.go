//go:build unix

package process

import "syscall"

// detachedSysProcAttr puts the child in a new session so closing the
// supervisor's terminal does not take the bridge or adapters down with it.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
