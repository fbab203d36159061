package services

import "github.com/konasuite/konabuild/internal/domain/entities"

// Default sonatype destinations
const (
	DefaultSnapshotRepoURL = "https://oss.sonatype.org/content/repositories/snapshots"
	DefaultReleaseRepoURL  = "https://oss.sonatype.org/service/local/staging/deploy/maven2"
	RepositoryName         = "ossrh"
)

// PublishTargetResolver picks the destination repository for a version
type PublishTargetResolver struct {
	snapshot entities.RepositoryTarget
	release  entities.RepositoryTarget
}

// NewPublishTargetResolver creates a resolver. Empty URLs fall back to the sonatype defaults.
func NewPublishTargetResolver(snapshotURL, releaseURL string) *PublishTargetResolver {
	if snapshotURL == "" {
		snapshotURL = DefaultSnapshotRepoURL
	}
	if releaseURL == "" {
		releaseURL = DefaultReleaseRepoURL
	}
	return &PublishTargetResolver{
		snapshot: entities.RepositoryTarget{Name: RepositoryName, URL: snapshotURL, Snapshot: true},
		release:  entities.RepositoryTarget{Name: RepositoryName, URL: releaseURL},
	}
}

// Resolve returns the snapshot target for pre-release versions and the release target otherwise
func (r *PublishTargetResolver) Resolve(version entities.VersionString) entities.RepositoryTarget {
	if version.IsPreRelease() {
		return r.snapshot
	}
	return r.release
}
