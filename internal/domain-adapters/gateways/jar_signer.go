package gateways

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/interfaces"
)

// JarSigner invokes the JDK jarsigner utility. It has no timeout: a hanging
// signer blocks the release until ctx is cancelled.
type JarSigner struct {
	runner     *ProcessRunner
	executable string
	logger     interfaces.Logger
}

// NewJarSigner creates a signer that runs the given executable.
// An empty executable resolves jarsigner from JAVA_HOME, then PATH.
func NewJarSigner(executable string, logger interfaces.Logger) *JarSigner {
	if executable == "" {
		executable = DefaultJarSignerPath(os.Getenv("JAVA_HOME"))
	}
	return &JarSigner{
		runner:     NewProcessRunner(),
		executable: executable,
		logger:     interfaces.OrNoOp(logger),
	}
}

// DefaultJarSignerPath returns <javaHome>/bin/jarsigner, or "jarsigner" when javaHome is empty.
// A JDK 8 java.home points at <JDK>/jre, so a trailing jre directory is stepped over.
func DefaultJarSignerPath(javaHome string) string {
	name := "jarsigner"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	if javaHome == "" {
		return name
	}
	home := filepath.Clean(javaHome)
	if filepath.Base(home) == "jre" {
		home = filepath.Dir(home)
	}
	return filepath.Join(home, "bin", name)
}

// Sign signs the artifact in place. Without a keystore path it returns Skipped
// and launches nothing.
func (s *JarSigner) Sign(ctx context.Context, artifactPath string, params entities.SigningParameters) entities.SignResult {
	if !params.Enabled() {
		s.logger.Info("no keystore configured, skipping jar signing", interfaces.F("artifact", artifactPath))
		return entities.Skipped(artifactPath)
	}

	s.logger.Info("signing jar",
		interfaces.F("artifact", artifactPath),
		interfaces.F("command", s.describe(artifactPath, params)))

	result := s.runner.Run(ctx, RunConfig{
		Name: s.executable,
		Args: signArgs(artifactPath, params),
	})

	if !result.Success {
		cause := fmt.Errorf("jarsigner failed for %s: %w", filepath.Base(artifactPath), scrubError(withStderr(result), params))
		s.logger.Error("jar signing failed",
			interfaces.F("artifact", artifactPath),
			interfaces.F("exit_code", result.ExitCode),
			interfaces.F("cause", cause))
		return entities.Failed(artifactPath, result.ExitCode, cause)
	}

	s.logger.Info("jar signed", interfaces.F("artifact", artifactPath), interfaces.F("duration", result.Duration))
	return entities.Signed(artifactPath)
}

func signArgs(artifactPath string, params entities.SigningParameters) []string {
	return []string{
		"-J-Duser.language=en_US",
		"-storetype", params.Type(),
		"-keystore", params.KeystorePath,
		"-storepass", params.StorePassword,
		"-keypass", params.KeyPassword,
		artifactPath,
		params.Alias,
	}
}

// describe renders the command line with passwords masked
func (s *JarSigner) describe(artifactPath string, params entities.SigningParameters) string {
	return s.executable + " " + strings.Join(signArgs(artifactPath, params.Redacted()), " ")
}

// withStderr appends the last line of the signer's stderr to the run error
func withStderr(result *RunResult) error {
	lines := strings.Split(strings.TrimSpace(result.Stderr), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return result.Error
	}
	return fmt.Errorf("%w: %s", result.Error, last)
}

// scrubError masks any password that found its way into an error message
func scrubError(err error, params entities.SigningParameters) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	for _, secret := range []string{params.StorePassword, params.KeyPassword} {
		if secret != "" {
			msg = strings.ReplaceAll(msg, secret, "******")
		}
	}
	if msg == err.Error() {
		return err
	}
	return fmt.Errorf("%s", msg)
}
