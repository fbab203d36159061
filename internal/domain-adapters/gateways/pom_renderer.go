package gateways

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

const pomNamespace = "http://maven.apache.org/POM/4.0.0"

type pomProject struct {
	XMLName        xml.Name     `xml:"project"`
	Xmlns          string       `xml:"xmlns,attr"`
	ModelVersion   string       `xml:"modelVersion"`
	GroupID        string       `xml:"groupId"`
	ArtifactID     string       `xml:"artifactId"`
	Version        string       `xml:"version"`
	Name           string       `xml:"name"`
	Description    string       `xml:"description"`
	URL            string       `xml:"url"`
	Licenses       []pomLicense `xml:"licenses>license"`
	SCMURL         string       `xml:"scm>url,omitempty"`
	PackagingValue string       `xml:"packaging"`
}

type pomLicense struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

// pomRenderer writes Maven POM files carrying resolved publish metadata
type pomRenderer struct{}

// NewPomRenderer creates a new POM renderer
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewPomRenderer() *pomRenderer {
	return &pomRenderer{}
}

// RenderPOM writes the POM for the module with the given metadata
func (r *pomRenderer) RenderPOM(w io.Writer, module *entities.Module, meta entities.PublishMetadata) error {
	if module.GroupID == "" {
		return fmt.Errorf("module %s has no group id", module.Name)
	}

	project := pomProject{
		Xmlns:          pomNamespace,
		ModelVersion:   "4.0.0",
		GroupID:        module.GroupID,
		ArtifactID:     module.Name,
		Version:        module.Version.Raw,
		Name:           meta.Title,
		Description:    meta.Description,
		URL:            meta.SourceURL,
		Licenses:       []pomLicense{{Name: meta.LicenseName, URL: meta.LicenseURL}},
		SCMURL:         meta.SourceURL,
		PackagingValue: "jar",
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write POM header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(project); err != nil {
		return fmt.Errorf("failed to encode POM: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write POM: %w", err)
	}

	return nil
}
