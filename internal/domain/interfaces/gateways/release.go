// Package gateways defines the contracts for processes and services outside the domain.
package gateways

import (
	"context"
	"io"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// ToolProber checks whether the optional interoperability tool is usable
type ToolProber interface {
	Probe(ctx context.Context, pathOrName string) entities.ProbeResult
}

// JarSigner embeds a signature into a jar using keystore credentials
type JarSigner interface {
	Sign(ctx context.Context, artifactPath string, params entities.SigningParameters) entities.SignResult
}

// DetachedSigner produces detached signatures for publication files
type DetachedSigner interface {
	// Enabled reports whether a signing key is loaded
	Enabled() bool

	// SignFile writes an armored signature next to the file and returns its path
	SignFile(filePath string) (string, error)

	// VerifyFile checks a signature written by SignFile
	VerifyFile(filePath, sigPath string) error
}

// ChecksumWriter writes checksum sidecar files
type ChecksumWriter interface {
	WriteChecksums(filePath string) ([]string, error)

	// VerifyChecksums checks the file against the sidecars written by WriteChecksums
	VerifyChecksums(filePath string) error
}

// PomRenderer writes the Maven POM for a module publication
type PomRenderer interface {
	RenderPOM(w io.Writer, module *entities.Module, meta entities.PublishMetadata) error
}

// ArtifactLocator finds the built artifacts of a module
type ArtifactLocator interface {
	FindModuleArtifacts(dir, module, version string) ([]*entities.Artifact, error)
}

// Uploader puts a file into a repository
type Uploader interface {
	Upload(ctx context.Context, target entities.RepositoryTarget, creds entities.Credentials, remotePath, localPath string) error
}
