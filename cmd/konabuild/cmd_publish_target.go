package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/services"
)

func newPublishTargetCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "publish-target [version]",
		Short: "Print the repository a version is published to",
		Long: `Prints the destination repository URL for a version. Versions ending in
-SNAPSHOT go to the snapshot repository, all others to release staging.
Without an argument the manifest version is used.`,
		Example: `  konabuild publish-target 1.0.6-SNAPSHOT
  konabuild publish-target --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var version entities.VersionString
			if len(args) == 1 {
				version = entities.VersionString{Raw: args[0]}
			} else {
				manifest, err := a.modules().GetManifest(contextOf(cmd))
				if err != nil {
					return fmt.Errorf("no version given and %w", err)
				}
				version = manifest.Version
			}

			target := services.NewPublishTargetResolver(a.cfg.SnapshotRepoURL, a.cfg.ReleaseRepoURL).Resolve(version)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(target)
			}
			fmt.Fprintln(out, target.URL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full target as JSON")

	return cmd
}
