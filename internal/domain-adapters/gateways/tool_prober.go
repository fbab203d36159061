package gateways

import (
	"context"
	"os/exec"
	"time"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/interfaces"
)

// Probe defaults for the interoperability tool
const (
	DefaultProbeTimeout = 3 * time.Second
	DefaultToolName     = "babassl"
	probeArgument       = "version"
)

// ToolProber checks whether an external interoperability tool can be run.
// Absence of the tool is an expected outcome, so Probe never returns an error.
type ToolProber struct {
	runner  *ProcessRunner
	timeout time.Duration
	logger  interfaces.Logger
}

// NewToolProber creates a prober with the default 3 second bound
func NewToolProber(logger interfaces.Logger) *ToolProber {
	return NewToolProberWithTimeout(DefaultProbeTimeout, logger)
}

// NewToolProberWithTimeout creates a prober with a custom bound
func NewToolProberWithTimeout(timeout time.Duration, logger interfaces.Logger) *ToolProber {
	return &ToolProber{
		runner:  NewProcessRunner(),
		timeout: timeout,
		logger:  interfaces.OrNoOp(logger),
	}
}

// Probe runs "<tool> version" and reports whether it exited 0 within the bound.
// A probe cut short by ctx counts as timed out.
func (p *ToolProber) Probe(ctx context.Context, pathOrName string) entities.ProbeResult {
	if pathOrName == "" {
		pathOrName = DefaultToolName
	}

	resolved := pathOrName
	if lp, err := exec.LookPath(pathOrName); err == nil {
		resolved = lp
	}

	result := p.runner.Run(ctx, RunConfig{
		Name:          pathOrName,
		Args:          []string{probeArgument},
		Timeout:       p.timeout,
		DiscardOutput: true,
	})

	var probe entities.ProbeResult
	switch {
	case result.Success:
		probe = entities.AvailableProbe(resolved)
	case !result.Launched:
		probe = entities.UnavailableProbe(resolved, entities.ProbeNotFound, result.ExitCode, result.Error)
	case result.TimedOut, result.Interrupted:
		probe = entities.UnavailableProbe(resolved, entities.ProbeTimedOut, result.ExitCode, result.Error)
	default:
		probe = entities.UnavailableProbe(resolved, entities.ProbeNonZeroExit, result.ExitCode, result.Error)
	}

	if probe.Available {
		p.logger.Debug("interop tool available",
			interfaces.F("path", probe.ResolvedPath),
			interfaces.F("duration", result.Duration))
	} else {
		p.logger.Warn("interop tool is unavailable",
			interfaces.F("path", probe.ResolvedPath),
			interfaces.F("outcome", probe.Outcome),
			interfaces.F("cause", probe.Cause))
	}

	return probe
}
