package services

import (
	"strings"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// Defaults for the published source tree and license
const (
	DefaultSourceRepo = "https://github.com/Tencent/TencentKonaSMSuite"
	LicenseName       = "GNU GPL v2.0 license with classpath exception"
)

type moduleCategory struct {
	token       string
	title       string
	description string
}

// Checked in order; the first token contained in the module name wins
var moduleCategories = []moduleCategory{
	{
		token:       "crypto",
		title:       "Tencent Kona Crypto Provider",
		description: "A Java security provider for supporting ShangMi algorithms SM2, SM3 and SM4.",
	},
	{
		token:       "pkix",
		title:       "Tencent Kona PKIX Provider",
		description: "A Java security provider for supporting ShangMi algorithms in public key infrastructure",
	},
	{
		token:       "ssl",
		title:       "Tencent Kona SSL Provider",
		description: "A Java security provider for supporting protocols TLCP, TLS 1.3 (RFC 8998) and TLS 1.2",
	},
}

var fallbackCategory = moduleCategory{
	title:       "Tencent Kona Provider",
	description: "A Java security provider for supporting ShangMi features",
}

// ModuleMetadataResolver maps module identities to publish metadata
type ModuleMetadataResolver struct {
	sourceRepo string
}

// NewModuleMetadataResolver creates a resolver for modules hosted under sourceRepo.
// An empty sourceRepo uses DefaultSourceRepo.
func NewModuleMetadataResolver(sourceRepo string) *ModuleMetadataResolver {
	if sourceRepo == "" {
		sourceRepo = DefaultSourceRepo
	}
	return &ModuleMetadataResolver{sourceRepo: strings.TrimSuffix(sourceRepo, "/")}
}

// Resolve returns the publish metadata for a module. It never fails.
func (r *ModuleMetadataResolver) Resolve(identity entities.ModuleIdentity) entities.PublishMetadata {
	category := fallbackCategory
	for _, c := range moduleCategories {
		if strings.Contains(identity.Name, c.token) {
			category = c
			break
		}
	}

	return entities.PublishMetadata{
		Title:       category.title,
		Description: category.description,
		SourceURL:   r.sourceRepo + "/tree/master/" + identity.Name,
		LicenseName: LicenseName,
		LicenseURL:  r.sourceRepo + "/blob/master/LICENSE.txt",
	}
}
