//go:build linux

package gateways

import "syscall"

// processAttributes also ties the child to this process: the kernel kills it
// if konabuild dies without a chance to cancel
func processAttributes() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true, Pdeathsig: syscall.SIGKILL}
}
