package services

import "github.com/konasuite/konabuild/internal/domain/entities"

// Test selection constants shared with the test runtime
const (
	// ToolPathProperty is the runtime property through which tests locate the interop tool
	ToolPathProperty = "test.babassl.path"

	// DefaultToolName is probed when no tool path is configured
	DefaultToolName = "babassl"
)

// Baseline include patterns: functional tests and runnable demonstrations
var baselineIncludes = []entities.TestPattern{
	entities.Include("*Test"),
	entities.Include("*Demo"),
}

// The TLCP and TLS interop tests are not stable on Windows
var windowsInteropExcludes = []entities.TestPattern{
	entities.Exclude("com.tencent.kona.ssl.hybrid.*"),
	entities.Exclude("com.tencent.kona.ssl.tlcp.*"),
	entities.Exclude("com.tencent.kona.ssl.tls.*"),
}

var toolTestsExclude = entities.Exclude("*BabaSSL*Test")

// selectionKey indexes the strategy table
type selectionKey struct {
	windows   bool
	available bool
}

// selectionStrategy lists the patterns appended after the baseline for each case.
// exposeToolPath tells whether the resolved tool path is handed to the tests.
type selectionStrategy struct {
	patterns       []entities.TestPattern
	exposeToolPath bool
}

var selectionTable = map[selectionKey]selectionStrategy{
	{windows: false, available: true}: {
		exposeToolPath: true,
	},
	{windows: false, available: false}: {
		patterns: []entities.TestPattern{toolTestsExclude},
	},
	{windows: true, available: true}: {
		patterns:       windowsInteropExcludes,
		exposeToolPath: true,
	},
	{windows: true, available: false}: {
		patterns: append(append([]entities.TestPattern{}, windowsInteropExcludes...), toolTestsExclude),
	},
}

// TestSelector computes which tests the test runtime should run
type TestSelector struct{}

// NewTestSelector creates a new test selector
func NewTestSelector() *TestSelector {
	return &TestSelector{}
}

// SelectPatterns builds the ordered test filter for a platform and probe result.
// The output only depends on its inputs.
func (s *TestSelector) SelectPatterns(platform entities.HostPlatform, probe entities.ProbeResult) *entities.TestPlan {
	strategy := selectionTable[selectionKey{windows: platform.IsWindows(), available: probe.Available}]

	patterns := make([]entities.TestPattern, 0, len(baselineIncludes)+len(strategy.patterns))
	patterns = append(patterns, baselineIncludes...)
	patterns = append(patterns, strategy.patterns...)

	plan := &entities.TestPlan{
		Platform:   platform,
		Probe:      probe,
		Patterns:   patterns,
		Properties: map[string]string{},
	}

	if strategy.exposeToolPath {
		plan.Properties[ToolPathProperty] = probe.ResolvedPath
	}

	return plan
}
