package yaml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// ManifestRepository implements repositories.ModuleRepository using a YAML manifest file
type ManifestRepository struct {
	manifestPath string
	parser       *ManifestParser
}

// NewManifestRepository creates a new YAML-based module repository
func NewManifestRepository(manifestPath string) *ManifestRepository {
	return &ManifestRepository{
		manifestPath: manifestPath,
		parser:       NewManifestParser(),
	}
}

// GetManifest loads the manifest. Relative artifact directories are resolved
// against the directory holding the manifest file.
func (r *ManifestRepository) GetManifest(_ context.Context) (*entities.Manifest, error) {
	if _, err := os.Stat(r.manifestPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("manifest not found: %s", r.manifestPath)
	}

	manifest, err := r.parser.ParseFile(r.manifestPath)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(r.manifestPath)
	for _, m := range manifest.Modules {
		dir := filepath.FromSlash(m.ArtifactDir)
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(root, dir)
		}
		m.ArtifactDir = dir
	}

	return manifest, nil
}

// GetModule retrieves a module by name
func (r *ManifestRepository) GetModule(ctx context.Context, name string) (*entities.Module, error) {
	manifest, err := r.GetManifest(ctx)
	if err != nil {
		return nil, err
	}

	module := manifest.FindModule(name)
	if module == nil {
		return nil, fmt.Errorf("module not found: %s", name)
	}
	return module, nil
}

// ListModules returns all modules in manifest order
func (r *ManifestRepository) ListModules(ctx context.Context) ([]*entities.Module, error) {
	manifest, err := r.GetManifest(ctx)
	if err != nil {
		return nil, err
	}
	return manifest.Modules, nil
}
