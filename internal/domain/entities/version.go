package entities

import "strings"

// SnapshotSuffix marks a pre-release version
const SnapshotSuffix = "-SNAPSHOT"

// VersionString is a module version as declared by the build
type VersionString struct {
	Raw string
}

// IsPreRelease reports whether the version ends with the snapshot suffix
func (v VersionString) IsPreRelease() bool {
	return strings.HasSuffix(v.Raw, SnapshotSuffix)
}

func (v VersionString) String() string {
	return v.Raw
}
