//go:build linux

package gateways

import (
	"os/exec"
	"syscall"
	"testing"
)

func TestConfigureProcessGroup_Linux(t *testing.T) {
	cmd := exec.Command("true")
	configureProcessGroup(cmd)

	if cmd.SysProcAttr == nil {
		t.Fatal("configureProcessGroup() left SysProcAttr unset")
	}
	if !cmd.SysProcAttr.Setpgid {
		t.Error("configureProcessGroup() Setpgid = false")
	}
	if cmd.SysProcAttr.Pdeathsig != syscall.SIGKILL {
		t.Errorf("configureProcessGroup() Pdeathsig = %v, want SIGKILL", cmd.SysProcAttr.Pdeathsig)
	}
	if cmd.Cancel == nil {
		t.Error("configureProcessGroup() should install a group-wide Cancel")
	}
}
