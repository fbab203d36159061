//go:build unix

package gateways

import (
	"os/exec"
	"syscall"
)

// configureProcessGroup starts the child in its own process group so that
// cancellation kills everything it spawned, not just the direct child
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = processAttributes()
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}

// killProcessGroup kills whatever is left in the group of an exited child.
// The group id cannot be reused while any member is alive.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
