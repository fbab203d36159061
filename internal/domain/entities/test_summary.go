package entities

import "fmt"

// TestSummary aggregates results read from test runtime reports
type TestSummary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Add accumulates another summary into this one
func (s *TestSummary) Add(other TestSummary) {
	s.Passed += other.Passed
	s.Failed += other.Failed
	s.Skipped += other.Skipped
}

func (s TestSummary) String() string {
	return fmt.Sprintf("Test summary: Passed: %d, Failed: %d, Skipped: %d", s.Passed, s.Failed, s.Skipped)
}
