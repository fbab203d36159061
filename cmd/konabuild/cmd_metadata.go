package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konasuite/konabuild/internal/domain-adapters/gateways"
	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/services"
)

func newMetadataCommand(a *app) *cobra.Command {
	var pom bool

	cmd := &cobra.Command{
		Use:   "metadata <module>",
		Short: "Print the publication metadata of a module",
		Long: `Prints the title, description, source URL and license that are attached
to a module's publication. Any module name resolves; names matching none of
crypto, pkix or ssl get the generic provider description.

With --pom, renders the module's POM from the manifest instead.`,
		Example: `  konabuild metadata kona-pkix
  konabuild metadata kona-ssl --pom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := args[0]

			sourceRepo := services.DefaultSourceRepo
			var module *entities.Module
			if pom {
				manifest, err := a.modules().GetManifest(contextOf(cmd))
				if err != nil {
					return err
				}
				if module = manifest.FindModule(name); module == nil {
					return fmt.Errorf("module %s is not in %s", name, a.cfg.ManifestPath)
				}
				if manifest.SourceRepo != "" {
					sourceRepo = manifest.SourceRepo
				}
			}

			meta := services.NewModuleMetadataResolver(sourceRepo).Resolve(entities.ModuleIdentity{Name: name})

			if pom {
				return gateways.NewPomRenderer().RenderPOM(out, module, meta)
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(meta)
		},
	}

	cmd.Flags().BoolVar(&pom, "pom", false, "render the Maven POM using the manifest")

	return cmd
}
