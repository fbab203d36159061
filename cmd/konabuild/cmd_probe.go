package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konasuite/konabuild/internal/config"
	"github.com/konasuite/konabuild/internal/domain-adapters/gateways"
)

func newProbeCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check whether the BabaSSL interoperability tool is usable",
		Long: `Runs "<tool> version" with a 3 second limit and reports whether the tool
is available. An unusable tool is never an error; it only disables the
interoperability tests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prober := gateways.NewToolProber(a.logger)
			result := prober.Probe(contextOf(cmd), a.cfg.ToolPath)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(probeOutput{
					Available:    result.Available,
					ResolvedPath: result.ResolvedPath,
					Outcome:      string(result.Outcome),
					ExitCode:     result.ExitCode,
				})
			}

			if result.Available {
				fmt.Fprintf(out, "available: %s\n", result.ResolvedPath)
				return nil
			}
			fmt.Fprintf(out, "unavailable: %s (%s)\n", result.ResolvedPath, result.Outcome)
			return nil
		},
	}

	cmd.Flags().String("tool-path", "", "path or name of the BabaSSL executable (default babassl)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	bindFlag(cmd.Flags(), "tool-path", config.KeyToolPath)

	return cmd
}

type probeOutput struct {
	Available    bool   `json:"available"`
	ResolvedPath string `json:"resolved_path"`
	Outcome      string `json:"outcome"`
	ExitCode     int    `json:"exit_code"`
}
