//go:build !unix

package gateways

import "os/exec"

// configureProcessGroup keeps the default exec.CommandContext kill behavior
func configureProcessGroup(_ *exec.Cmd) {}

func killProcessGroup(_ *exec.Cmd) {}
