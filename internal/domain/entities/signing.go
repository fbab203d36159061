package entities

import "fmt"

// DefaultKeystoreType is used when no keystore type is configured
const DefaultKeystoreType = "PKCS12"

const redacted = "******"

// SigningParameters hold the keystore settings for jar signing.
// Password fields must never reach logs; String and Redacted mask them.
type SigningParameters struct {
	KeystoreType  string
	KeystorePath  string
	StorePassword string
	KeyPassword   string
	Alias         string
}

// Enabled reports whether a keystore is configured. Without one signing is skipped.
func (p SigningParameters) Enabled() bool {
	return p.KeystorePath != ""
}

// Type returns the keystore type, falling back to PKCS12
func (p SigningParameters) Type() string {
	if p.KeystoreType == "" {
		return DefaultKeystoreType
	}
	return p.KeystoreType
}

// Redacted returns a copy with both passwords masked
func (p SigningParameters) Redacted() SigningParameters {
	out := p
	if out.StorePassword != "" {
		out.StorePassword = redacted
	}
	if out.KeyPassword != "" {
		out.KeyPassword = redacted
	}
	return out
}

func (p SigningParameters) String() string {
	r := p.Redacted()
	return fmt.Sprintf("{type=%s keystore=%s alias=%s storepass=%s keypass=%s}",
		r.Type(), r.KeystorePath, r.Alias, r.StorePassword, r.KeyPassword)
}

// GoString keeps %#v from printing the raw fields
func (p SigningParameters) GoString() string {
	return "entities.SigningParameters" + p.String()
}

// SignStatus is the outcome of a signing attempt
type SignStatus string

// Signing outcomes
const (
	SignSigned  SignStatus = "signed"
	SignSkipped SignStatus = "skipped"
	SignFailed  SignStatus = "failed"
)

// SignResult reports what happened when signing an artifact
type SignResult struct {
	Status   SignStatus
	Artifact string
	ExitCode int
	Cause    error
}

// Signed builds a successful sign result
func Signed(artifact string) SignResult {
	return SignResult{Status: SignSigned, Artifact: artifact}
}

// Skipped builds a skipped sign result
func Skipped(artifact string) SignResult {
	return SignResult{Status: SignSkipped, Artifact: artifact}
}

// Failed builds a failed sign result
func Failed(artifact string, exitCode int, cause error) SignResult {
	return SignResult{Status: SignFailed, Artifact: artifact, ExitCode: exitCode, Cause: cause}
}
