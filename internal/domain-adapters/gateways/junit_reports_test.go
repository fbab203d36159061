package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJUnitReportReader_ReadSummary(t *testing.T) {
	dir := t.TempDir()
	sm2 := `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="com.tencent.kona.crypto.SM2Test" tests="10" skipped="1" failures="1" errors="0"></testsuite>`
	tlcp := `<testsuite name="com.tencent.kona.ssl.TLCPTest" tests="5" skipped="0" failures="0" errors="1"></testsuite>`
	reports := map[string]string{
		"TEST-com.tencent.kona.crypto.SM2Test.xml": sm2,
		"TEST-com.tencent.kona.ssl.TLCPTest.xml":   tlcp,
		"ignored.xml":                              `<testsuite tests="100"></testsuite>`,
	}
	for name, body := range reports {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0600); err != nil {
			t.Fatalf("Failed to write report: %v", err)
		}
	}

	summary, err := NewJUnitReportReader().ReadSummary(dir)
	if err != nil {
		t.Fatalf("ReadSummary() error = %v", err)
	}

	if summary.Passed != 12 || summary.Failed != 2 || summary.Skipped != 1 {
		t.Errorf("ReadSummary() = %+v", summary)
	}
	if summary.String() != "Test summary: Passed: 12, Failed: 2, Skipped: 1" {
		t.Errorf("String() = %q", summary.String())
	}
}

func TestJUnitReportReader_NoReports(t *testing.T) {
	if _, err := NewJUnitReportReader().ReadSummary(t.TempDir()); err == nil {
		t.Error("ReadSummary() should fail without reports")
	}
}

func TestJUnitReportReader_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "TEST-x.xml"), []byte("<testsuite"), 0600); err != nil {
		t.Fatalf("Failed to write report: %v", err)
	}
	if _, err := NewJUnitReportReader().ReadSummary(dir); err == nil {
		t.Error("ReadSummary() should fail on malformed XML")
	}
}
