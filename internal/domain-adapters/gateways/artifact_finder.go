package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// ArtifactFinder provides utilities for locating build artifacts
type ArtifactFinder struct{}

// NewArtifactFinder creates a new artifact finder
func NewArtifactFinder() *ArtifactFinder {
	return &ArtifactFinder{}
}

// FindModuleArtifacts returns the jar, sources jar and javadoc jar of a module
// that exist in dir. Missing files are left out; release validation reports them.
func (f *ArtifactFinder) FindModuleArtifacts(dir, module, version string) ([]*entities.Artifact, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("artifacts directory does not exist: %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat artifacts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("artifacts path is not a directory: %s", dir)
	}

	kinds := []entities.ArtifactKind{
		entities.ArtifactJar,
		entities.ArtifactSources,
		entities.ArtifactJavadoc,
	}

	var artifacts []*entities.Artifact
	for _, kind := range kinds {
		a := &entities.Artifact{Module: module, Version: version, Kind: kind}
		path := filepath.Join(dir, a.FileName())
		if _, err := os.Stat(path); err != nil {
			continue
		}
		a.Path = path
		artifacts = append(artifacts, a)
	}

	return artifacts, nil
}
