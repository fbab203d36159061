package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/konasuite/konabuild/internal/config"
	"github.com/konasuite/konabuild/internal/domain-adapters/gateways"
	orchestrators "github.com/konasuite/konabuild/internal/domain-orchestrators"
	"github.com/konasuite/konabuild/internal/external-adapters/gpg"
)

func newReleaseCommand(a *app) *cobra.Command {
	var (
		dryRun           bool
		requireSignature bool
	)

	cmd := &cobra.Command{
		Use:   "release [module]...",
		Short: "Validate, sign and publish modules",
		Long: `Publishes the listed modules, or every module of the manifest:

  1. checks the version (semantic or Maven style, e.g. 1.0.5.1-SNAPSHOT) and that
     the jar, sources jar and javadoc jar exist
  2. renders the POM with the module's metadata
  3. signs the jars with jarsigner (skipped without ks.path)
  4. writes .asc signatures when pgp.key is set, and checksum files
  5. uploads everything to the snapshot or release repository

A jar that fails to sign is reported and the release continues, unless
--require-signature is given. Missing ossrh credentials abort the release
with exit code 2.`,
		Example: `  konabuild release --dry-run
  konabuild release kona-crypto kona-pkix --require-signature`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			out := cmd.OutOrStdout()

			repo := a.modules()
			manifest, err := repo.GetManifest(ctx)
			if err != nil {
				return err
			}

			pgp := gpg.NewSigner()
			if a.cfg.PGPKeyPath != "" {
				if err := pgp.LoadSigningKey(a.cfg.PGPKeyPath, []byte(a.cfg.PGPPassphrase)); err != nil {
					return err
				}
			}

			orch := orchestrators.NewReleaseOrchestrator(repo, orchestrators.ReleaseGateways{
				Locator:   gateways.NewArtifactFinder(),
				Pom:       gateways.NewPomRenderer(),
				JarSigner: gateways.NewJarSigner(a.cfg.SignerPath, a.logger),
				PGP:       pgp,
				Checksums: gateways.NewChecksumGenerator(),
				Uploader:  gateways.NewMavenUploader(),
			}, orchestrators.ReleaseOrchestratorConfig{
				Signing:          a.cfg.Signing,
				Credentials:      a.cfg.Credentials,
				SourceRepo:       manifest.SourceRepo,
				SnapshotRepoURL:  a.cfg.SnapshotRepoURL,
				ReleaseRepoURL:   a.cfg.ReleaseRepoURL,
				RequireSignature: requireSignature,
				DryRun:           dryRun,
			}, a.logger)

			var results []*orchestrators.ReleaseResult
			if len(args) == 0 {
				results, err = orch.ReleaseAll(ctx)
			} else {
				for _, name := range args {
					var result *orchestrators.ReleaseResult
					result, err = orch.ReleaseModule(ctx, name)
					results = append(results, result)
					if err != nil {
						break
					}
				}
			}

			for _, r := range results {
				if r.Success {
					fmt.Fprintln(out, r.Summary())
				}
			}
			return err
		},
	}

	addSigningFlags(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "do everything except the upload")
	cmd.Flags().BoolVar(&requireSignature, "require-signature", false, "abort when a jar cannot be signed")
	cmd.Flags().String("pgp-key", "", "armored PGP private key for .asc signatures")
	cmd.Flags().String("snapshot-url", "", "snapshot repository URL")
	cmd.Flags().String("release-url", "", "release staging repository URL")
	bindFlag(cmd.Flags(), "pgp-key", config.KeyPGPKey)
	bindFlag(cmd.Flags(), "snapshot-url", config.KeySnapshotRepoURL)
	bindFlag(cmd.Flags(), "release-url", config.KeyReleaseRepoURL)

	return cmd
}
