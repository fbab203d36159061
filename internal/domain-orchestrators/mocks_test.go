package orchestrators

import (
	"context"
	"errors"
	"io"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// Mock implementations for testing
type mockProber struct {
	result entities.ProbeResult
	calls  []string
}

func (m *mockProber) Probe(_ context.Context, pathOrName string) entities.ProbeResult {
	m.calls = append(m.calls, pathOrName)
	return m.result
}

type mockModuleRepository struct {
	modules []*entities.Module
	err     error
}

func (m *mockModuleRepository) GetManifest(_ context.Context) (*entities.Manifest, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &entities.Manifest{Modules: m.modules}, nil
}

func (m *mockModuleRepository) GetModule(_ context.Context, name string) (*entities.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, mod := range m.modules {
		if mod.Name == name {
			return mod, nil
		}
	}
	return nil, errors.New("module not found: " + name)
}

func (m *mockModuleRepository) ListModules(_ context.Context) ([]*entities.Module, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.modules, nil
}

type mockLocator struct {
	artifacts map[string][]*entities.Artifact
	err       error
}

func (m *mockLocator) FindModuleArtifacts(_, module, _ string) ([]*entities.Artifact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.artifacts[module], nil
}

type mockPom struct {
	err error
}

func (m *mockPom) RenderPOM(w io.Writer, module *entities.Module, meta entities.PublishMetadata) error {
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, "<project>"+module.Name+" "+meta.Title+"</project>")
	return err
}

type mockJarSigner struct {
	fail   bool
	signed []string
}

func (m *mockJarSigner) Sign(_ context.Context, artifactPath string, params entities.SigningParameters) entities.SignResult {
	if !params.Enabled() {
		return entities.Skipped(artifactPath)
	}
	if m.fail {
		return entities.Failed(artifactPath, 1, errors.New("jarsigner exited with code 1"))
	}
	m.signed = append(m.signed, artifactPath)
	return entities.Signed(artifactPath)
}

type mockDetachedSigner struct {
	enabled   bool
	err       error
	verifyErr error
	verified  []string
}

func (m *mockDetachedSigner) Enabled() bool { return m.enabled }

func (m *mockDetachedSigner) SignFile(filePath string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return filePath + ".asc", nil
}

func (m *mockDetachedSigner) VerifyFile(_, sigPath string) error {
	if m.verifyErr != nil {
		return m.verifyErr
	}
	m.verified = append(m.verified, sigPath)
	return nil
}

type mockChecksums struct {
	verifyErr error
	verified  []string
}

func (m *mockChecksums) WriteChecksums(filePath string) ([]string, error) {
	return []string{filePath + ".sha1"}, nil
}

func (m *mockChecksums) VerifyChecksums(filePath string) error {
	if m.verifyErr != nil {
		return m.verifyErr
	}
	m.verified = append(m.verified, filePath)
	return nil
}

type mockUploader struct {
	remote []string
	err    error
}

func (m *mockUploader) Upload(_ context.Context, _ entities.RepositoryTarget, creds entities.Credentials, remotePath, _ string) error {
	if !creds.IsComplete() {
		return entities.ErrMissingCredentials
	}
	if m.err != nil {
		return m.err
	}
	m.remote = append(m.remote, remotePath)
	return nil
}
