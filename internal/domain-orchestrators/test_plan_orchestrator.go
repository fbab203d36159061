// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/interfaces"
	"github.com/konasuite/konabuild/internal/domain/interfaces/gateways"
	"github.com/konasuite/konabuild/internal/domain/services"
)

// TestPlanOrchestrator probes the interoperability tool and turns the result into a test plan
type TestPlanOrchestrator struct {
	prober   gateways.ToolProber
	selector *services.TestSelector
	platform entities.HostPlatform
	logger   interfaces.Logger
}

// NewTestPlanOrchestrator creates a new test plan orchestrator
func NewTestPlanOrchestrator(prober gateways.ToolProber, platform entities.HostPlatform, logger interfaces.Logger) *TestPlanOrchestrator {
	return &TestPlanOrchestrator{
		prober:   prober,
		selector: services.NewTestSelector(),
		platform: platform,
		logger:   interfaces.OrNoOp(logger),
	}
}

// BuildTestPlan probes toolPath once and selects the test patterns for this host.
// The probe never fails the build; an unusable tool only removes its tests.
func (o *TestPlanOrchestrator) BuildTestPlan(ctx context.Context, toolPath string) *entities.TestPlan {
	if toolPath == "" {
		toolPath = services.DefaultToolName
	}

	probe := o.prober.Probe(ctx, toolPath)
	plan := o.selector.SelectPatterns(o.platform, probe)

	o.logger.Info("test plan selected",
		interfaces.F("platform", o.platform),
		interfaces.F("tool_available", probe.Available),
		interfaces.F("includes", len(plan.Includes())),
		interfaces.F("excludes", len(plan.Excludes())),
	)

	return plan
}
