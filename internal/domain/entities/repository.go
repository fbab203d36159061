package entities

import (
	"errors"
	"strings"
)

// RepositoryTarget is a publication destination
type RepositoryTarget struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Snapshot bool   `json:"snapshot"`
}

// LayoutPath returns the Maven repository path group/as/dirs/module/version/file
func LayoutPath(groupID, module, version, fileName string) string {
	return strings.Join([]string{
		strings.ReplaceAll(groupID, ".", "/"),
		module,
		version,
		fileName,
	}, "/")
}

// Credentials authenticate against a publication destination
type Credentials struct {
	Username string
	Password string
}

// IsComplete reports whether both username and password are present
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}

// String never renders the password
func (c Credentials) String() string {
	if c.Username == "" {
		return "<none>"
	}
	return c.Username + ":******"
}

// ErrMissingCredentials is returned when an upload is attempted without credentials.
// It is the only failure that aborts a release.
var ErrMissingCredentials = errors.New("publish credentials are not configured")
