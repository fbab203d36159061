package gateways

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// junitSuite holds the counters of a JUnit XML report
type junitSuite struct {
	Tests    int `xml:"tests,attr"`
	Failures int `xml:"failures,attr"`
	Errors   int `xml:"errors,attr"`
	Skipped  int `xml:"skipped,attr"`
}

// JUnitReportReader aggregates results from JUnit XML reports written by the test runtime
type JUnitReportReader struct{}

// NewJUnitReportReader creates a new report reader
func NewJUnitReportReader() *JUnitReportReader {
	return &JUnitReportReader{}
}

// ReadSummary sums every TEST-*.xml report in dir
func (r *JUnitReportReader) ReadSummary(dir string) (entities.TestSummary, error) {
	var summary entities.TestSummary

	reports, err := filepath.Glob(filepath.Join(dir, "TEST-*.xml"))
	if err != nil {
		return summary, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		return summary, fmt.Errorf("no test reports found in %s", dir)
	}

	for _, report := range reports {
		//nolint:gosec // G304: report path comes from the test results directory
		data, err := os.ReadFile(report)
		if err != nil {
			return summary, fmt.Errorf("failed to read %s: %w", report, err)
		}

		var suite junitSuite
		if err := xml.Unmarshal(data, &suite); err != nil {
			return summary, fmt.Errorf("failed to parse %s: %w", filepath.Base(report), err)
		}

		failed := suite.Failures + suite.Errors
		summary.Add(entities.TestSummary{
			Passed:  suite.Tests - failed - suite.Skipped,
			Failed:  failed,
			Skipped: suite.Skipped,
		})
	}

	return summary, nil
}
