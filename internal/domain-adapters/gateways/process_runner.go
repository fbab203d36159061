package gateways

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait blocks on output pipes after the process is killed
const waitDelay = time.Second

// ProcessRunner launches external executables and classifies how they ended
type ProcessRunner struct {
	waitDelay time.Duration
}

// NewProcessRunner creates a new process runner
func NewProcessRunner() *ProcessRunner {
	return &ProcessRunner{waitDelay: waitDelay}
}

// RunConfig contains configuration for launching an executable.
// A zero Timeout means the process may run until it exits or ctx is cancelled.
// With DiscardOutput the child writes to the null device and Wait never blocks
// on pipes held open by its descendants.
type RunConfig struct {
	Name          string
	Args          []string
	WorkingDir    string
	Env           map[string]string
	Timeout       time.Duration
	DiscardOutput bool
}

// RunResult contains the result of a process run
type RunResult struct {
	Success     bool
	ExitCode    int
	TimedOut    bool
	Interrupted bool
	Launched    bool
	Stdout      string
	Stderr      string
	Duration    time.Duration
	Error       error
}

// Run executes the configured command and waits for it. The process is killed
// when the timeout elapses or ctx is cancelled, and always reaped before Run returns.
// Descendants left in its process group are killed once it has exited.
func (r *ProcessRunner) Run(ctx context.Context, config RunConfig) *RunResult {
	startTime := time.Now()
	result := &RunResult{ExitCode: -1}

	execCtx := ctx
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	//nolint:gosec // G204: executable and arguments come from build configuration
	cmd := exec.CommandContext(execCtx, config.Name, config.Args...)
	cmd.WaitDelay = r.waitDelay
	configureProcessGroup(cmd)

	if config.WorkingDir != "" {
		cmd.Dir = config.WorkingDir
	}

	if len(config.Env) > 0 {
		env := os.Environ()
		for key, value := range config.Env {
			env = append(env, fmt.Sprintf("%s=%s", key, value))
		}
		cmd.Env = env
	}

	var stdout, stderr bytes.Buffer
	if !config.DiscardOutput {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if err := cmd.Start(); err != nil {
		result.Duration = time.Since(startTime)
		result.Error = fmt.Errorf("failed to launch %s: %w", config.Name, err)
		return result
	}
	result.Launched = true

	err := cmd.Wait()
	killProcessGroup(cmd)
	result.Duration = time.Since(startTime)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	// The exit status decides; output still held open by a descendant does not
	if err == nil || (errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState.Success()) {
		result.Success = true
		result.ExitCode = 0
		return result
	}

	var exitErr *exec.ExitError
	//nolint:gocritic // ifElseChain: checking different error types, not suitable for switch
	if config.Timeout > 0 && errors.Is(execCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		result.TimedOut = true
		result.Error = fmt.Errorf("%s did not exit within %v", config.Name, config.Timeout)
	} else if ctx.Err() != nil {
		result.Interrupted = true
		result.Error = fmt.Errorf("%s interrupted: %w", config.Name, ctx.Err())
	} else if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Error = fmt.Errorf("%s exited with status %d", config.Name, result.ExitCode)
	} else {
		result.Error = fmt.Errorf("%s failed: %w", config.Name, err)
	}

	return result
}
