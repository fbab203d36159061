package entities

// ProbeOutcome classifies how an external tool probe ended
type ProbeOutcome string

// Probe outcomes. Only ProbeOK means the tool is available.
const (
	ProbeOK          ProbeOutcome = "ok"
	ProbeNotFound    ProbeOutcome = "not_found"
	ProbeNonZeroExit ProbeOutcome = "non_zero_exit"
	ProbeTimedOut    ProbeOutcome = "timed_out"
)

// ProbeResult is the immutable outcome of probing the interoperability tool
type ProbeResult struct {
	Available    bool
	ResolvedPath string
	Outcome      ProbeOutcome
	ExitCode     int
	Cause        error
}

// AvailableProbe builds a successful probe result for the given path
func AvailableProbe(path string) ProbeResult {
	return ProbeResult{Available: true, ResolvedPath: path, Outcome: ProbeOK}
}

// UnavailableProbe builds a failed probe result
func UnavailableProbe(path string, outcome ProbeOutcome, exitCode int, cause error) ProbeResult {
	return ProbeResult{
		ResolvedPath: path,
		Outcome:      outcome,
		ExitCode:     exitCode,
		Cause:        cause,
	}
}
