package services

import (
	"testing"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

func TestPublishTargetResolver_Resolve(t *testing.T) {
	r := NewPublishTargetResolver("", "")

	tests := []struct {
		version      string
		wantSnapshot bool
		wantURL      string
	}{
		{"1.0.0-SNAPSHOT", true, DefaultSnapshotRepoURL},
		{"1.0.0", false, DefaultReleaseRepoURL},
		{"1.0.9-rc1", false, DefaultReleaseRepoURL},
		{"1.0.0-snapshot", false, DefaultReleaseRepoURL},
		{"1.0.0-SNAPSHOT.1", false, DefaultReleaseRepoURL},
		{"", false, DefaultReleaseRepoURL},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got := r.Resolve(entities.VersionString{Raw: tt.version})
			if got.Snapshot != tt.wantSnapshot {
				t.Errorf("Resolve(%q).Snapshot = %v, want %v", tt.version, got.Snapshot, tt.wantSnapshot)
			}
			if got.URL != tt.wantURL {
				t.Errorf("Resolve(%q).URL = %q, want %q", tt.version, got.URL, tt.wantURL)
			}
			if got.Name != RepositoryName {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.version, got.Name, RepositoryName)
			}
		})
	}
}

func TestPublishTargetResolver_CustomURLs(t *testing.T) {
	r := NewPublishTargetResolver("https://nexus.local/snapshots", "https://nexus.local/releases")

	if got := r.Resolve(entities.VersionString{Raw: "2.0.0-SNAPSHOT"}).URL; got != "https://nexus.local/snapshots" {
		t.Errorf("snapshot URL = %q", got)
	}
	if got := r.Resolve(entities.VersionString{Raw: "2.0.0"}).URL; got != "https://nexus.local/releases" {
		t.Errorf("release URL = %q", got)
	}
}
