package gateways

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/konasuite/konabuild/internal/domain/entities"
)

// MavenUploader puts files into a Maven repository over HTTP.
// Each file is sent exactly once; failed uploads are not retried.
type MavenUploader struct {
	client    *http.Client
	userAgent string
}

// NewMavenUploader creates a new uploader
func NewMavenUploader() *MavenUploader {
	return &MavenUploader{
		client: &http.Client{
			Timeout: 5 * time.Minute,
		},
		userAgent: "konabuild/1.0",
	}
}

// Upload sends localPath to target.URL/remotePath with basic authentication.
// Credentials are checked here and nowhere earlier.
func (u *MavenUploader) Upload(ctx context.Context, target entities.RepositoryTarget, creds entities.Credentials, remotePath, localPath string) error {
	if !creds.IsComplete() {
		return fmt.Errorf("upload to %s: %w", target.Name, entities.ErrMissingCredentials)
	}

	fullURL, err := url.JoinPath(target.URL, remotePath)
	if err != nil {
		return fmt.Errorf("invalid repository URL: %w", err)
	}

	//nolint:gosec // G304: localPath is a build artifact
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, fullURL, f)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Password)
	req.Header.Set("User-Agent", u.userAgent)
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = info.Size()

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", remotePath, err)
	}
	//nolint:errcheck // Defer close on HTTP response body
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("failed to upload %s: status %d: %s", remotePath, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
