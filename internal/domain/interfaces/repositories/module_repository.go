// Package repositories defines interfaces for data access layers.
package repositories

import (
	"context"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// ModuleRepository defines the interface for accessing the build's module manifest
type ModuleRepository interface {
	// GetManifest loads the whole manifest
	GetManifest(ctx context.Context) (*entities.Manifest, error)

	// GetModule retrieves a module by name
	GetModule(ctx context.Context, name string) (*entities.Module, error)

	// ListModules returns all modules in manifest order
	ListModules(ctx context.Context) ([]*entities.Module, error)
}
