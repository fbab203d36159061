package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/konasuite/konabuild/internal/config"
	"github.com/konasuite/konabuild/internal/domain/interfaces"
	"github.com/konasuite/konabuild/internal/external-adapters/charmlog"
	"github.com/konasuite/konabuild/internal/external-adapters/yaml"
)

// app carries state shared by all subcommands of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.BuildConfig
	logger  interfaces.Logger
}

// newRootCommand creates the root cobra command
func newRootCommand(version, commit, date string) *cobra.Command {
	a := &app{v: config.New(), logger: &interfaces.NoOpLogger{}}

	rootCmd := &cobra.Command{
		Use:   "konabuild",
		Short: "Build policy for the Tencent Kona provider modules",
		Long: `konabuild decides which tests run on this host and signs and publishes
the Tencent Kona provider modules.

Properties are read from flags, KONA_* environment variables and
konabuild.yaml, e.g. KONA_KS_PATH for ks.path.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./konabuild.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("manifest", config.DefaultManifest, "module manifest file")
	bindFlag(flags, "log-level", config.KeyLogLevel)
	bindFlag(flags, "manifest", config.KeyManifest)

	rootCmd.AddCommand(newProbeCommand(a))
	rootCmd.AddCommand(newTestPlanCommand(a))
	rootCmd.AddCommand(newMetadataCommand(a))
	rootCmd.AddCommand(newSignCommand(a))
	rootCmd.AddCommand(newPublishTargetCommand(a))
	rootCmd.AddCommand(newReleaseCommand(a))

	return rootCmd
}

// init binds the flags of the running command, reads the config file and
// snapshots the configuration once
func (a *app) init(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if keys, ok := f.Annotations[configKeyAnnotation]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(keys[0], f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	a.cfg = config.Load(a.v)

	logger, err := charmlog.New(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// configKeyAnnotation marks a flag as an override for a configuration key.
// Several subcommands share keys, so binding happens for the running command only.
const configKeyAnnotation = "konabuild_config_key"

func bindFlag(fs *pflag.FlagSet, name, key string) {
	if err := fs.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}

func (a *app) modules() *yaml.ManifestRepository {
	return yaml.NewManifestRepository(a.cfg.ManifestPath)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
