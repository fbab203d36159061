package gateways

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

func signingParams(keystore string) entities.SigningParameters {
	return entities.SigningParameters{
		KeystorePath:  keystore,
		StorePassword: "s3cret-store",
		KeyPassword:   "s3cret-key",
		Alias:         "kona-release",
	}
}

func TestJarSigner_SkipsWithoutKeystore(t *testing.T) {
	// Pointing at an executable that would fail proves nothing is launched
	marker := filepath.Join(t.TempDir(), "launched")
	signer := NewJarSigner(writeScript(t, "jarsigner", "touch "+marker+"\nexit 1"), nil)

	result := signer.Sign(context.Background(), "kona-crypto-1.0.5.jar", signingParams(""))

	if result.Status != entities.SignSkipped {
		t.Errorf("Sign() Status = %s, want %s", result.Status, entities.SignSkipped)
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("Sign() launched the signer without a keystore")
	}
}

func TestJarSigner_PassesArguments(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	signer := NewJarSigner(writeScript(t, "jarsigner", `for a in "$@"; do echo "$a" >> `+argsFile+`; done`), nil)

	result := signer.Sign(context.Background(), "build/libs/kona-crypto-1.0.5.jar", signingParams("/keys/release.p12"))

	if result.Status != entities.SignSigned {
		t.Fatalf("Sign() Status = %s, cause: %v", result.Status, result.Cause)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("Failed to read recorded args: %v", err)
	}

	want := []string{
		"-J-Duser.language=en_US",
		"-storetype", "PKCS12",
		"-keystore", "/keys/release.p12",
		"-storepass", "s3cret-store",
		"-keypass", "s3cret-key",
		"build/libs/kona-crypto-1.0.5.jar",
		"kona-release",
	}
	got := strings.Split(strings.TrimSpace(string(data)), "\n")
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("signer args = %v, want %v", got, want)
	}
}

func TestJarSigner_FailureDoesNotLeakPasswords(t *testing.T) {
	logger := &recordingLogger{}
	signer := NewJarSigner(writeScript(t, "jarsigner", `echo "jarsigner error: bad password $7" >&2; exit 1`), logger)

	result := signer.Sign(context.Background(), "kona-ssl-1.0.5.jar", signingParams("/keys/release.p12"))

	if result.Status != entities.SignFailed {
		t.Fatalf("Sign() Status = %s, want %s", result.Status, entities.SignFailed)
	}
	if result.ExitCode != 1 {
		t.Errorf("Sign() ExitCode = %d, want 1", result.ExitCode)
	}
	if result.Cause == nil {
		t.Fatal("Sign() Cause = nil for failed signing")
	}

	for _, text := range []string{result.Cause.Error(), logger.joined()} {
		if strings.Contains(text, "s3cret-store") || strings.Contains(text, "s3cret-key") {
			t.Errorf("password leaked into diagnostics: %s", text)
		}
	}
	if !strings.Contains(result.Cause.Error(), "bad password") {
		t.Errorf("Cause = %v, want signer stderr", result.Cause)
	}
	if !strings.Contains(logger.joined(), "/keys/release.p12") {
		t.Error("log should still name the keystore")
	}
}

func TestJarSigner_LaunchFailure(t *testing.T) {
	signer := NewJarSigner(filepath.Join(t.TempDir(), "missing-jarsigner"), nil)

	result := signer.Sign(context.Background(), "kona-pkix-1.0.5.jar", signingParams("/keys/release.p12"))

	if result.Status != entities.SignFailed {
		t.Errorf("Sign() Status = %s, want %s", result.Status, entities.SignFailed)
	}
}

func TestDefaultJarSignerPath(t *testing.T) {
	if DefaultJarSignerPath("") != "jarsigner" && DefaultJarSignerPath("") != "jarsigner.exe" {
		t.Errorf("DefaultJarSignerPath(\"\") = %q", DefaultJarSignerPath(""))
	}

	jdk := filepath.Join("opt", "jdk8")
	got := DefaultJarSignerPath(filepath.Join(jdk, "jre"))
	if filepath.Dir(filepath.Dir(got)) != jdk {
		t.Errorf("DefaultJarSignerPath(jre) = %q, want under %q", got, jdk)
	}

	jdk17 := filepath.Join("opt", "jdk17")
	got = DefaultJarSignerPath(jdk17)
	if filepath.Dir(filepath.Dir(got)) != jdk17 {
		t.Errorf("DefaultJarSignerPath(jdk17) = %q", got)
	}
}
