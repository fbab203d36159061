package entities

import (
	"sort"
	"strings"
)

// PatternKind tells whether a test pattern selects or removes tests
type PatternKind string

// Pattern kinds
const (
	PatternInclude PatternKind = "include"
	PatternExclude PatternKind = "exclude"
)

// TestPattern is a single include or exclude filter on fully-qualified test class names.
// The pattern uses '*' as a wildcard matching any run of characters.
type TestPattern struct {
	Kind    PatternKind `json:"kind"`
	Pattern string      `json:"pattern"`
}

// Include creates an include pattern
func Include(pattern string) TestPattern {
	return TestPattern{Kind: PatternInclude, Pattern: pattern}
}

// Exclude creates an exclude pattern
func Exclude(pattern string) TestPattern {
	return TestPattern{Kind: PatternExclude, Pattern: pattern}
}

// Matches reports whether the pattern matches the given test class name
func (p TestPattern) Matches(testName string) bool {
	return matchWildcard(p.Pattern, testName)
}

// TestPlan is the filter handed to the external test runtime
type TestPlan struct {
	Platform   HostPlatform      `json:"platform"`
	Probe      ProbeResult       `json:"-"`
	Patterns   []TestPattern     `json:"patterns"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Includes returns the include patterns in order
func (tp *TestPlan) Includes() []string {
	return tp.patternsOfKind(PatternInclude)
}

// Excludes returns the exclude patterns in order
func (tp *TestPlan) Excludes() []string {
	return tp.patternsOfKind(PatternExclude)
}

func (tp *TestPlan) patternsOfKind(kind PatternKind) []string {
	var out []string
	for _, p := range tp.Patterns {
		if p.Kind == kind {
			out = append(out, p.Pattern)
		}
	}
	return out
}

// Allows reports whether a test class would run under this plan.
// A test must match at least one include pattern and no exclude pattern.
func (tp *TestPlan) Allows(testName string) bool {
	included := false
	for _, p := range tp.Patterns {
		if p.Kind == PatternExclude && p.Matches(testName) {
			return false
		}
		if p.Kind == PatternInclude && p.Matches(testName) {
			included = true
		}
	}
	return included
}

// PropertyKeys returns the runtime property names in sorted order
func (tp *TestPlan) PropertyKeys() []string {
	keys := make([]string, 0, len(tp.Properties))
	for k := range tp.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchWildcard matches name against a pattern where '*' matches any sequence
func matchWildcard(pattern, name string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == name
	}

	if !strings.HasPrefix(name, parts[0]) {
		return false
	}
	name = name[len(parts[0]):]

	last := parts[len(parts)-1]
	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(name, part)
		if idx < 0 {
			return false
		}
		name = name[idx+len(part):]
	}

	return strings.HasSuffix(name, last)
}
