//go:build !unix

package process

import "syscall"

func detachedSysProcAttr() *syscall.SysProcAttr {
	return nil
}
