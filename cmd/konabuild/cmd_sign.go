package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/konasuite/konabuild/internal/config"
	"github.com/konasuite/konabuild/internal/domain-adapters/gateways"
	"github.com/konasuite/konabuild/internal/domain/entities"
)

func newSignCommand(a *app) *cobra.Command {
	var requireSignature bool

	cmd := &cobra.Command{
		Use:   "sign <jar>...",
		Short: "Sign jars with jarsigner",
		Long: `Signs each jar in place with the JDK jarsigner using the configured
keystore. Without ks.path nothing is signed and the jars are reported as
skipped.

Passwords are read from ks.storepass and ks.keypass (KONA_KS_STOREPASS,
KONA_KS_KEYPASS or konabuild.yaml) and never printed.`,
		Example: `  KONA_KS_STOREPASS=... KONA_KS_KEYPASS=... \
    konabuild sign --ks-path release.p12 --ks-alias kona kona-crypto/build/libs/*.jar`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer := gateways.NewJarSigner(a.cfg.SignerPath, a.logger)
			out := cmd.OutOrStdout()

			failed := 0
			for _, jar := range args {
				result := signer.Sign(contextOf(cmd), jar, a.cfg.Signing)
				switch result.Status {
				case entities.SignFailed:
					failed++
					fmt.Fprintf(out, "%s: failed: %v\n", filepath.Base(jar), result.Cause)
				default:
					fmt.Fprintf(out, "%s: %s\n", filepath.Base(jar), result.Status)
				}
			}

			if failed > 0 && requireSignature {
				return fmt.Errorf("%d of %d jar(s) could not be signed", failed, len(args))
			}
			return nil
		},
	}

	addSigningFlags(cmd)
	cmd.Flags().BoolVar(&requireSignature, "require-signature", false, "fail when a jar cannot be signed")

	return cmd
}

// addSigningFlags adds the keystore flags. Passwords have no flags so they stay out of process listings.
func addSigningFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("ks-path", "", "keystore file; signing is skipped when unset")
	flags.String("ks-type", entities.DefaultKeystoreType, "keystore type")
	flags.String("ks-alias", "", "key alias in the keystore")
	flags.String("signer", "", "jarsigner executable (default $JAVA_HOME/bin/jarsigner)")
	bindFlag(flags, "ks-path", config.KeyKeystorePath)
	bindFlag(flags, "ks-type", config.KeyKeystoreType)
	bindFlag(flags, "ks-alias", config.KeyAlias)
	bindFlag(flags, "signer", config.KeySignerPath)
}
