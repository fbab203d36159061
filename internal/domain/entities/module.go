package entities

// ModuleIdentity is the declared identity of a build module
type ModuleIdentity struct {
	Name string
}

// PublishMetadata is the human-readable metadata attached to a publication
type PublishMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
	LicenseName string `json:"license_name"`
	LicenseURL  string `json:"license_url"`
}

// Module is a module entry from the build manifest
type Module struct {
	Name        string
	GroupID     string
	Version     VersionString
	ArtifactDir string
}

// Identity returns the module's identity
func (m *Module) Identity() ModuleIdentity {
	return ModuleIdentity{Name: m.Name}
}

// Manifest describes the modules of a multi-module build
type Manifest struct {
	GroupID     string
	Version     VersionString
	SourceRepo  string
	ArtifactDir string
	Modules     []*Module
}

// FindModule returns the module with the given name, or nil
func (m *Manifest) FindModule(name string) *Module {
	for _, mod := range m.Modules {
		if mod.Name == name {
			return mod
		}
	}
	return nil
}
