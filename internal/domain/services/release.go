package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// ErrInvalidVersion indicates a version that cannot be published
var ErrInvalidVersion = errors.New("invalid version")

// mavenVersion matches numeric components with optional qualifiers, e.g. 1.0.5.1 or 1.0.5.1-SNAPSHOT
var mavenVersion = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*([.-][0-9A-Za-z]+)*$`)

// ReleaseStatus represents the readiness status of a module for release
type ReleaseStatus string

// Release validation statuses
const (
	StatusReady            ReleaseStatus = "ready"
	StatusNoArtifacts      ReleaseStatus = "no_artifacts"
	StatusMissingArtifacts ReleaseStatus = "missing_artifacts"
	StatusInvalidVersion   ReleaseStatus = "invalid_version"
)

// requiredKinds are the jars every module publication carries
var requiredKinds = []entities.ArtifactKind{
	entities.ArtifactJar,
	entities.ArtifactSources,
	entities.ArtifactJavadoc,
}

// ReleaseValidation contains the validation result for a module release
type ReleaseValidation struct {
	Status        ReleaseStatus
	Module        string
	Version       string
	Present       []entities.ArtifactKind
	Missing       []entities.ArtifactKind
	VersionErr    error
	ExpectedCount int
}

// IsReady returns true if the module is ready for release
func (rv *ReleaseValidation) IsReady() bool {
	return rv.Status == StatusReady
}

// ErrorMessage returns a human-readable error message if not ready
func (rv *ReleaseValidation) ErrorMessage() string {
	switch rv.Status {
	case StatusReady:
		return ""
	case StatusInvalidVersion:
		return rv.VersionErr.Error()
	case StatusNoArtifacts:
		return fmt.Sprintf("No artifacts found for %s %s (expected: %d jars)", rv.Module, rv.Version, rv.ExpectedCount)
	case StatusMissingArtifacts:
		return fmt.Sprintf("Missing artifacts for %s %s: %s", rv.Module, rv.Version, kindsToString(rv.Missing))
	default:
		return "Unknown status"
	}
}

// ReleaseService handles release validation logic
type ReleaseService struct{}

// NewReleaseService creates a new release service
func NewReleaseService() *ReleaseService {
	return &ReleaseService{}
}

// ValidateRelease checks that the version is publishable and that the jar,
// sources jar and javadoc jar of the module are all present
func (s *ReleaseService) ValidateRelease(module string, version entities.VersionString, artifacts []*entities.Artifact) *ReleaseValidation {
	validation := &ReleaseValidation{
		Module:        module,
		Version:       version.Raw,
		ExpectedCount: len(requiredKinds),
	}

	if err := ValidateVersion(version); err != nil {
		validation.Status = StatusInvalidVersion
		validation.VersionErr = err
		return validation
	}

	present := make(map[entities.ArtifactKind]bool)
	for _, a := range artifacts {
		if a.Module == module && a.Version == version.Raw {
			present[a.Kind] = true
		}
	}

	for _, kind := range requiredKinds {
		if present[kind] {
			validation.Present = append(validation.Present, kind)
		} else {
			validation.Missing = append(validation.Missing, kind)
		}
	}

	switch {
	case len(validation.Present) == 0:
		validation.Status = StatusNoArtifacts
	case len(validation.Missing) > 0:
		validation.Status = StatusMissingArtifacts
	default:
		validation.Status = StatusReady
	}

	return validation
}

// ValidateVersion accepts semantic versions and Maven-style versions such as
// 1.0.5.1, with or without the snapshot suffix
func ValidateVersion(version entities.VersionString) error {
	raw := strings.TrimSpace(version.Raw)
	if raw == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidVersion)
	}
	norm := raw
	if !strings.HasPrefix(norm, "v") {
		norm = "v" + norm
	}
	if !semver.IsValid(norm) && !mavenVersion.MatchString(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, version.Raw)
	}
	return nil
}

func kindsToString(kinds []entities.ArtifactKind) string {
	strs := make([]string, len(kinds))
	for i, k := range kinds {
		strs[i] = string(k)
	}
	return strings.Join(strs, ", ")
}
