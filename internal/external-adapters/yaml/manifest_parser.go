// Package yaml provides the YAML module manifest parser and repository.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// ErrManifestInvalid is returned for manifests that parse but cannot describe a build
var ErrManifestInvalid = errors.New("invalid module manifest")

// defaultArtifactDir is appended to the module name when no directory is given
const defaultArtifactDir = "build/libs"

// yamlManifest represents the raw YAML structure
type yamlManifest struct {
	Group       string       `yaml:"group"`
	Version     string       `yaml:"version"`
	SourceRepo  string       `yaml:"source_repo"`
	ArtifactDir string       `yaml:"artifact_dir"`
	Modules     []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Name        string `yaml:"name"`
	Group       string `yaml:"group"`
	Version     string `yaml:"version"`
	ArtifactDir string `yaml:"artifact_dir"`
}

// ManifestParser parses YAML module manifests
type ManifestParser struct{}

// NewManifestParser creates a new YAML parser
func NewManifestParser() *ManifestParser {
	return &ManifestParser{}
}

// ParseFile parses a YAML manifest file into a Manifest entity
func (p *ManifestParser) ParseFile(filePath string) (*entities.Manifest, error) {
	//nolint:gosec // G304: filePath is the configured manifest path
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Manifest entity.
// Module group, version and artifact directory inherit from the top level.
func (p *ManifestParser) Parse(data []byte) (*entities.Manifest, error) {
	var raw yamlManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw.Group == "" {
		return nil, fmt.Errorf("%w: group is required", ErrManifestInvalid)
	}
	if raw.Version == "" {
		return nil, fmt.Errorf("%w: version is required", ErrManifestInvalid)
	}
	if len(raw.Modules) == 0 {
		return nil, fmt.Errorf("%w: at least one module is required", ErrManifestInvalid)
	}

	manifest := &entities.Manifest{
		GroupID:     raw.Group,
		Version:     entities.VersionString{Raw: raw.Version},
		SourceRepo:  raw.SourceRepo,
		ArtifactDir: raw.ArtifactDir,
		Modules:     make([]*entities.Module, 0, len(raw.Modules)),
	}

	seen := make(map[string]bool)
	for i, ym := range raw.Modules {
		if ym.Name == "" {
			return nil, fmt.Errorf("%w: module %d has no name", ErrManifestInvalid, i)
		}
		if seen[ym.Name] {
			return nil, fmt.Errorf("%w: duplicate module %s", ErrManifestInvalid, ym.Name)
		}
		seen[ym.Name] = true

		manifest.Modules = append(manifest.Modules, convertModule(raw, ym))
	}

	return manifest, nil
}

func convertModule(raw yamlManifest, ym yamlModule) *entities.Module {
	group := ym.Group
	if group == "" {
		group = raw.Group
	}

	version := ym.Version
	if version == "" {
		version = raw.Version
	}

	dir := ym.ArtifactDir
	if dir == "" {
		base := raw.ArtifactDir
		if base == "" {
			base = defaultArtifactDir
		}
		dir = path.Join(ym.Name, base)
	}

	return &entities.Module{
		Name:        ym.Name,
		GroupID:     group,
		Version:     entities.VersionString{Raw: version},
		ArtifactDir: dir,
	}
}
