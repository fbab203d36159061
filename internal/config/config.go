// Package config builds the immutable build configuration from defaults,
// an optional konabuild.yaml, KONA_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/services"
)

// Property keys. The dotted names match the properties the build passes to the test runtime.
const (
	KeyToolPath        = "test.babassl.path"
	KeyKeystoreType    = "ks.type"
	KeyKeystorePath    = "ks.path"
	KeyStorePassword   = "ks.storepass"
	KeyKeyPassword     = "ks.keypass"
	KeyAlias           = "ks.alias"
	KeySignerPath      = "ks.signer"
	KeyOSSRHUsername   = "ossrh.username"
	KeyOSSRHPassword   = "ossrh.password"
	KeyPGPKey          = "pgp.key"
	KeyPGPPassphrase   = "pgp.passphrase"
	KeyManifest        = "manifest"
	KeySnapshotRepoURL = "repo.snapshot"
	KeyReleaseRepoURL  = "repo.release"
	KeyLogLevel        = "log.level"
)

// EnvPrefix prefixes every environment override, e.g. KONA_KS_PATH
const EnvPrefix = "KONA"

// DefaultManifest is the manifest file looked up in the working directory
const DefaultManifest = "kona-modules.yaml"

// BuildConfig is constructed once at startup and passed by value afterwards
type BuildConfig struct {
	ToolPath        string
	Signing         entities.SigningParameters
	SignerPath      string
	Credentials     entities.Credentials
	PGPKeyPath      string
	PGPPassphrase   string
	ManifestPath    string
	SnapshotRepoURL string
	ReleaseRepoURL  string
	LogLevel        string
}

// New returns a viper instance with defaults and environment bindings applied
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyToolPath, services.DefaultToolName)
	v.SetDefault(KeyKeystoreType, entities.DefaultKeystoreType)
	v.SetDefault(KeyManifest, DefaultManifest)
	v.SetDefault(KeySnapshotRepoURL, services.DefaultSnapshotRepoURL)
	v.SetDefault(KeyReleaseRepoURL, services.DefaultReleaseRepoURL)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The repository credentials also accept the names CI systems already export
	_ = v.BindEnv(KeyOSSRHUsername, EnvPrefix+"_OSSRH_USERNAME", "OSSRH_USERNAME")
	_ = v.BindEnv(KeyOSSRHPassword, EnvPrefix+"_OSSRH_PASSWORD", "OSSRH_PASSWORD")

	return v
}

// ReadFile merges a YAML config file into v. With an empty path, konabuild.yaml
// in the working directory is read if present.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("konabuild")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read konabuild.yaml: %w", err)
	}
	return nil
}

// Load snapshots v into a BuildConfig
func Load(v *viper.Viper) BuildConfig {
	toolPath := v.GetString(KeyToolPath)
	if toolPath == "" {
		toolPath = services.DefaultToolName
	}

	return BuildConfig{
		ToolPath: toolPath,
		Signing: entities.SigningParameters{
			KeystoreType:  v.GetString(KeyKeystoreType),
			KeystorePath:  v.GetString(KeyKeystorePath),
			StorePassword: v.GetString(KeyStorePassword),
			KeyPassword:   v.GetString(KeyKeyPassword),
			Alias:         v.GetString(KeyAlias),
		},
		SignerPath: v.GetString(KeySignerPath),
		Credentials: entities.Credentials{
			Username: v.GetString(KeyOSSRHUsername),
			Password: v.GetString(KeyOSSRHPassword),
		},
		PGPKeyPath:      v.GetString(KeyPGPKey),
		PGPPassphrase:   v.GetString(KeyPGPPassphrase),
		ManifestPath:    v.GetString(KeyManifest),
		SnapshotRepoURL: v.GetString(KeySnapshotRepoURL),
		ReleaseRepoURL:  v.GetString(KeyReleaseRepoURL),
		LogLevel:        v.GetString(KeyLogLevel),
	}
}
