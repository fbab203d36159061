package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/konasuite/konabuild/internal/config"
	"github.com/konasuite/konabuild/internal/domain-adapters/gateways"
	orchestrators "github.com/konasuite/konabuild/internal/domain-orchestrators"
	"github.com/konasuite/konabuild/internal/domain/entities"
)

// Test plan output formats
const (
	formatText   = "text"
	formatJSON   = "json"
	formatGradle = "gradle"
)

func newTestPlanCommand(a *app) *cobra.Command {
	var (
		format     string
		platform   string
		summaryDir string
	)

	cmd := &cobra.Command{
		Use:   "test-plan",
		Short: "Print the test include/exclude policy for this host",
		Long: `Probes the BabaSSL tool and prints which test classes the test runtime
should run on this host.

With --summary, reads the JUnit XML reports in the given directory instead
and prints the pass/fail/skip counts.`,
		Example: `  konabuild test-plan
  konabuild test-plan --format gradle --platform windows
  konabuild test-plan --summary kona-crypto/build/test-results/test`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if summaryDir != "" {
				summary, err := gateways.NewJUnitReportReader().ReadSummary(summaryDir)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, summary.String())
				return nil
			}

			switch format {
			case formatText, formatJSON, formatGradle:
			default:
				return fmt.Errorf("unknown format %q (want text, json or gradle)", format)
			}

			host := entities.DetectPlatform()
			if platform != "" {
				host = entities.PlatformFromGOOS(platform)
			}

			orch := orchestrators.NewTestPlanOrchestrator(gateways.NewToolProber(a.logger), host, a.logger)
			plan := orch.BuildTestPlan(contextOf(cmd), a.cfg.ToolPath)

			return renderTestPlan(out, plan, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, gradle")
	cmd.Flags().StringVar(&platform, "platform", "", "plan for this platform instead of the host (windows, linux, darwin)")
	cmd.Flags().StringVar(&summaryDir, "summary", "", "print the summary of the JUnit reports in this directory")
	cmd.Flags().String("tool-path", "", "path or name of the BabaSSL executable (default babassl)")
	bindFlag(cmd.Flags(), "tool-path", config.KeyToolPath)

	return cmd
}

type testPlanOutput struct {
	Platform      entities.HostPlatform `json:"platform"`
	ToolAvailable bool                  `json:"tool_available"`
	ToolOutcome   string                `json:"tool_outcome"`
	Includes      []string              `json:"includes"`
	Excludes      []string              `json:"excludes"`
	Properties    map[string]string     `json:"properties"`
}

func renderTestPlan(w io.Writer, plan *entities.TestPlan, format string) error {
	switch format {
	case formatText:
		fmt.Fprintf(w, "platform: %s\n", plan.Platform)
		fmt.Fprintf(w, "babassl: %s\n", plan.Probe.Outcome)
		for _, p := range plan.Patterns {
			fmt.Fprintf(w, "%s %s\n", p.Kind, p.Pattern)
		}
		for _, k := range plan.PropertyKeys() {
			fmt.Fprintf(w, "property %s=%s\n", k, plan.Properties[k])
		}
		return nil

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(testPlanOutput{
			Platform:      plan.Platform,
			ToolAvailable: plan.Probe.Available,
			ToolOutcome:   string(plan.Probe.Outcome),
			Includes:      nonNil(plan.Includes()),
			Excludes:      nonNil(plan.Excludes()),
			Properties:    plan.Properties,
		})

	case formatGradle:
		fmt.Fprintln(w, "test {")
		fmt.Fprintln(w, "    filter {")
		for _, p := range plan.Includes() {
			fmt.Fprintf(w, "        includeTestsMatching %s\n", strconv.Quote(p))
		}
		for _, p := range plan.Excludes() {
			fmt.Fprintf(w, "        excludeTestsMatching %s\n", strconv.Quote(p))
		}
		fmt.Fprintln(w, "    }")
		for _, k := range plan.PropertyKeys() {
			fmt.Fprintf(w, "    systemProperty %s, %s\n", strconv.Quote(k), strconv.Quote(plan.Properties[k]))
		}
		fmt.Fprintln(w, "}")
		return nil

	default:
		return fmt.Errorf("unknown format %q (want text, json or gradle)", format)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
