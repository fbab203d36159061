// Package entities defines core domain models and data structures.
package entities

// ArtifactKind identifies the role a file plays in a module publication
type ArtifactKind string

// Publication artifact kinds
const (
	ArtifactJar     ArtifactKind = "jar"
	ArtifactSources ArtifactKind = "sources"
	ArtifactJavadoc ArtifactKind = "javadoc"
	ArtifactPOM     ArtifactKind = "pom"
)

// Artifact represents a packaged build output eligible for signing and publication
type Artifact struct {
	Module  string
	Version string
	Path    string
	Kind    ArtifactKind
}

// Classifier returns the Maven classifier for the artifact ("" for the main jar and POM)
func (a *Artifact) Classifier() string {
	switch a.Kind {
	case ArtifactSources, ArtifactJavadoc:
		return string(a.Kind)
	default:
		return ""
	}
}

// Extension returns the file extension used in the repository layout
func (a *Artifact) Extension() string {
	if a.Kind == ArtifactPOM {
		return "pom"
	}
	return "jar"
}

// FileName returns the repository file name: module-version[-classifier].ext
func (a *Artifact) FileName() string {
	name := a.Module + "-" + a.Version
	if c := a.Classifier(); c != "" {
		name += "-" + c
	}
	return name + "." + a.Extension()
}
