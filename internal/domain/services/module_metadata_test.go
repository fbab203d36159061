package services

import (
	"testing"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

func TestModuleMetadataResolver_Resolve(t *testing.T) {
	r := NewModuleMetadataResolver("")

	tests := []struct {
		module    string
		wantTitle string
	}{
		{"tencent-crypto-provider", "Tencent Kona Crypto Provider"},
		{"kona-crypto", "Tencent Kona Crypto Provider"},
		{"kona-pkix", "Tencent Kona PKIX Provider"},
		{"kona-ssl", "Tencent Kona SSL Provider"},
		{"kona-provider", "Tencent Kona Provider"},
		{"unknown-module", "Tencent Kona Provider"},
		{"", "Tencent Kona Provider"},
		// crypto is checked before ssl
		{"ssl-crypto-bridge", "Tencent Kona Crypto Provider"},
	}

	for _, tt := range tests {
		t.Run(tt.module, func(t *testing.T) {
			meta := r.Resolve(entities.ModuleIdentity{Name: tt.module})
			if meta.Title != tt.wantTitle {
				t.Errorf("Resolve(%q).Title = %q, want %q", tt.module, meta.Title, tt.wantTitle)
			}
			if meta.Description == "" {
				t.Errorf("Resolve(%q).Description is empty", tt.module)
			}
			if meta.LicenseName != LicenseName {
				t.Errorf("Resolve(%q).LicenseName = %q", tt.module, meta.LicenseName)
			}
		})
	}
}

func TestModuleMetadataResolver_CryptoDescription(t *testing.T) {
	meta := NewModuleMetadataResolver("").Resolve(entities.ModuleIdentity{Name: "tencent-crypto-provider"})

	want := "A Java security provider for supporting ShangMi algorithms SM2, SM3 and SM4."
	if meta.Description != want {
		t.Errorf("Description = %q, want %q", meta.Description, want)
	}
}

func TestModuleMetadataResolver_URLs(t *testing.T) {
	r := NewModuleMetadataResolver("https://example.com/suite/")
	meta := r.Resolve(entities.ModuleIdentity{Name: "kona-pkix"})

	if meta.SourceURL != "https://example.com/suite/tree/master/kona-pkix" {
		t.Errorf("SourceURL = %q", meta.SourceURL)
	}
	if meta.LicenseURL != "https://example.com/suite/blob/master/LICENSE.txt" {
		t.Errorf("LicenseURL = %q", meta.LicenseURL)
	}

	def := NewModuleMetadataResolver("").Resolve(entities.ModuleIdentity{Name: "kona-ssl"})
	if def.SourceURL != DefaultSourceRepo+"/tree/master/kona-ssl" {
		t.Errorf("default SourceURL = %q", def.SourceURL)
	}
}
