package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/konasuite/konabuild/internal/domain/entities"
	"github.com/konasuite/konabuild/internal/domain/interfaces"
	"github.com/konasuite/konabuild/internal/domain/interfaces/gateways"
	"github.com/konasuite/konabuild/internal/domain/interfaces/repositories"
	"github.com/konasuite/konabuild/internal/domain/services"
)

// Release errors
var (
	ErrReleaseNotReady = errors.New("module is not ready for release")
	ErrSigningRequired = errors.New("jar signing failed and a signature is required")
)

// ReleaseGateways bundles the collaborators outside the domain
type ReleaseGateways struct {
	Locator   gateways.ArtifactLocator
	Pom       gateways.PomRenderer
	JarSigner gateways.JarSigner
	PGP       gateways.DetachedSigner
	Checksums gateways.ChecksumWriter
	Uploader  gateways.Uploader
}

// ReleaseOrchestratorConfig holds configuration for the orchestrator
type ReleaseOrchestratorConfig struct {
	Signing          entities.SigningParameters
	Credentials      entities.Credentials
	SourceRepo       string
	SnapshotRepoURL  string
	ReleaseRepoURL   string
	RequireSignature bool
	DryRun           bool
}

// ReleaseOrchestrator coordinates validation, signing and publication of modules
type ReleaseOrchestrator struct {
	modules    repositories.ModuleRepository
	gw         ReleaseGateways
	releaseSvc *services.ReleaseService
	metadata   *services.ModuleMetadataResolver
	targets    *services.PublishTargetResolver
	config     ReleaseOrchestratorConfig
	logger     interfaces.Logger
}

// NewReleaseOrchestrator creates a new release orchestrator
func NewReleaseOrchestrator(
	modules repositories.ModuleRepository,
	gw ReleaseGateways,
	config ReleaseOrchestratorConfig,
	logger interfaces.Logger,
) *ReleaseOrchestrator {
	return &ReleaseOrchestrator{
		modules:    modules,
		gw:         gw,
		releaseSvc: services.NewReleaseService(),
		metadata:   services.NewModuleMetadataResolver(config.SourceRepo),
		targets:    services.NewPublishTargetResolver(config.SnapshotRepoURL, config.ReleaseRepoURL),
		config:     config,
		logger:     interfaces.OrNoOp(logger),
	}
}

// UploadRecord is one file sent (or planned, in a dry run) to the repository
type UploadRecord struct {
	LocalPath  string
	RemotePath string
}

// ReleaseResult contains the result of a module release
type ReleaseResult struct {
	Module     *entities.Module
	Metadata   entities.PublishMetadata
	Validation *services.ReleaseValidation
	Target     entities.RepositoryTarget
	Artifacts  []*entities.Artifact
	Signatures []entities.SignResult
	Files      []string
	Uploads    []UploadRecord
	DryRun     bool
	Duration   time.Duration
	Success    bool
	Error      error
}

// SigningFailures returns the jars whose signing attempt failed
func (r *ReleaseResult) SigningFailures() []entities.SignResult {
	var failed []entities.SignResult
	for _, s := range r.Signatures {
		if s.Status == entities.SignFailed {
			failed = append(failed, s)
		}
	}
	return failed
}

// Summary returns a human-readable summary of the release
func (r *ReleaseResult) Summary() string {
	name := "<unknown>"
	if r.Module != nil {
		name = r.Module.Name + " " + r.Module.Version.Raw
	}
	if !r.Success {
		return fmt.Sprintf("Release of %s failed: %v", name, r.Error)
	}

	verb := "Published"
	if r.DryRun {
		verb = "Would publish"
	}
	summary := fmt.Sprintf("%s %s to %s (%d files)", verb, name, r.Target.URL, len(r.Uploads))
	if failed := r.SigningFailures(); len(failed) > 0 {
		summary += fmt.Sprintf("\nWarning: %d jar(s) were not signed", len(failed))
	}
	return summary
}

// ReleaseAll releases every module of the manifest in order, stopping at the first error
func (o *ReleaseOrchestrator) ReleaseAll(ctx context.Context) ([]*ReleaseResult, error) {
	modules, err := o.modules.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	results := make([]*ReleaseResult, 0, len(modules))
	for _, m := range modules {
		result, err := o.ReleaseModule(ctx, m.Name)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ReleaseModule executes the release workflow for one module
func (o *ReleaseOrchestrator) ReleaseModule(ctx context.Context, name string) (*ReleaseResult, error) {
	startTime := time.Now()
	result := &ReleaseResult{DryRun: o.config.DryRun}

	fail := func(err error) (*ReleaseResult, error) {
		result.Error = err
		result.Duration = time.Since(startTime)
		o.logger.Error("release failed", interfaces.F("module", name), interfaces.F("error", err))
		return result, err
	}

	// Step 1: Load the module from the manifest
	module, err := o.modules.GetModule(ctx, name)
	if err != nil {
		return fail(fmt.Errorf("failed to load module: %w", err))
	}
	result.Module = module
	version := module.Version

	// Step 2: Locate and validate the artifact set
	artifacts, err := o.gw.Locator.FindModuleArtifacts(module.ArtifactDir, module.Name, version.Raw)
	if err != nil {
		return fail(fmt.Errorf("failed to locate artifacts: %w", err))
	}
	validation := o.releaseSvc.ValidateRelease(module.Name, version, artifacts)
	result.Validation = validation
	if !validation.IsReady() {
		return fail(fmt.Errorf("%w: %s", ErrReleaseNotReady, validation.ErrorMessage()))
	}

	// Step 3: Resolve metadata and render the POM next to the jars
	result.Metadata = o.metadata.Resolve(module.Identity())
	pom, err := o.writePOM(module, result.Metadata)
	if err != nil {
		return fail(err)
	}
	result.Artifacts = append(append([]*entities.Artifact{}, artifacts...), pom)

	// Step 4: Embed a jar signature into the main jar. Failures are reported,
	// not fatal, unless required.
	for _, a := range artifacts {
		if a.Kind != entities.ArtifactJar {
			continue
		}
		sig := o.gw.JarSigner.Sign(ctx, a.Path, o.config.Signing)
		result.Signatures = append(result.Signatures, sig)
		switch sig.Status {
		case entities.SignFailed:
			o.logger.Warn("jar signing failed",
				interfaces.F("artifact", filepath.Base(a.Path)),
				interfaces.F("exit_code", sig.ExitCode),
				interfaces.F("cause", sig.Cause),
			)
			if o.config.RequireSignature {
				return fail(fmt.Errorf("%w: %s: %v", ErrSigningRequired, filepath.Base(a.Path), sig.Cause))
			}
		case entities.SignSkipped:
			o.logger.Debug("jar signing skipped, no keystore configured", interfaces.F("artifact", filepath.Base(a.Path)))
		}
	}

	// Step 5: Detached PGP signatures and checksums
	files, err := o.publicationFiles(result.Artifacts)
	if err != nil {
		return fail(err)
	}
	result.Files = files

	// Step 6: Resolve the destination and upload
	result.Target = o.targets.Resolve(version)
	o.logger.Info("publishing module",
		interfaces.F("module", module.Name),
		interfaces.F("version", version.Raw),
		interfaces.F("repository", result.Target.URL),
		interfaces.F("snapshot", result.Target.Snapshot),
	)

	for _, f := range files {
		record := UploadRecord{
			LocalPath:  f,
			RemotePath: entities.LayoutPath(module.GroupID, module.Name, version.Raw, filepath.Base(f)),
		}
		if !o.config.DryRun {
			if err := o.gw.Uploader.Upload(ctx, result.Target, o.config.Credentials, record.RemotePath, f); err != nil {
				return fail(fmt.Errorf("failed to publish %s: %w", module.Name, err))
			}
		}
		result.Uploads = append(result.Uploads, record)
	}

	result.Success = true
	result.Duration = time.Since(startTime)
	return result, nil
}

func (o *ReleaseOrchestrator) writePOM(module *entities.Module, meta entities.PublishMetadata) (*entities.Artifact, error) {
	pom := &entities.Artifact{
		Module:  module.Name,
		Version: module.Version.Raw,
		Kind:    entities.ArtifactPOM,
	}
	pom.Path = filepath.Join(module.ArtifactDir, pom.FileName())

	//nolint:gosec // G304: path is derived from the manifest artifact directory
	f, err := os.Create(pom.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create POM: %w", err)
	}
	if err := o.gw.Pom.RenderPOM(f, module, meta); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to render POM: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to write POM: %w", err)
	}
	return pom, nil
}

// publicationFiles returns every file to upload: each artifact, its .asc
// signature when a PGP key is loaded, and the checksum sidecars of both.
// Signatures and sidecars are checked right after they are written.
func (o *ReleaseOrchestrator) publicationFiles(artifacts []*entities.Artifact) ([]string, error) {
	var files []string
	for _, a := range artifacts {
		group := []string{a.Path}

		if o.gw.PGP != nil && o.gw.PGP.Enabled() {
			asc, err := o.gw.PGP.SignFile(a.Path)
			if err != nil {
				return nil, fmt.Errorf("failed to sign %s: %w", filepath.Base(a.Path), err)
			}
			if err := o.gw.PGP.VerifyFile(a.Path, asc); err != nil {
				return nil, err
			}
			group = append(group, asc)
		}

		for _, f := range group {
			sums, err := o.gw.Checksums.WriteChecksums(f)
			if err != nil {
				return nil, fmt.Errorf("failed to write checksums for %s: %w", filepath.Base(f), err)
			}
			if err := o.gw.Checksums.VerifyChecksums(f); err != nil {
				return nil, err
			}
			files = append(files, f)
			files = append(files, sums...)
		}
	}
	return files, nil
}
