package gateways

import (
	//nolint:gosec // G501: md5 is required by the Maven repository layout, not used for security
	"crypto/md5"
	//nolint:gosec // G505: sha1 is required by the Maven repository layout, not used for security
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrChecksumMismatch is returned when a file no longer matches its sidecar
var ErrChecksumMismatch = errors.New("checksum mismatch")

// checksumAlgorithms are the sidecar files Maven repositories expect, in write order
var checksumAlgorithms = []struct {
	ext string
	new func() hash.Hash
}{
	{"md5", md5.New},
	{"sha1", sha1.New},
	{"sha256", sha256.New},
	{"sha512", sha512.New},
}

// checksumGenerator writes and verifies checksum sidecar files using pure Go
type checksumGenerator struct{}

// NewChecksumGenerator creates a new checksum generator
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumGenerator() *checksumGenerator {
	return &checksumGenerator{}
}

// WriteChecksums hashes the file once per algorithm and writes <file>.<alg> next to it
func (g *checksumGenerator) WriteChecksums(filePath string) ([]string, error) {
	sums, err := hashFile(filePath)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(checksumAlgorithms))
	for i, alg := range checksumAlgorithms {
		sumPath := filePath + "." + alg.ext
		if err := os.WriteFile(sumPath, []byte(sums[i]), 0600); err != nil {
			return written, fmt.Errorf("failed to write %s checksum: %w", alg.ext, err)
		}
		written = append(written, sumPath)
	}

	return written, nil
}

// VerifyChecksums rehashes the file and compares every sidecar written by WriteChecksums
func (g *checksumGenerator) VerifyChecksums(filePath string) error {
	sums, err := hashFile(filePath)
	if err != nil {
		return err
	}

	for i, alg := range checksumAlgorithms {
		sumPath := filePath + "." + alg.ext
		//nolint:gosec // G304: sidecar path derives from the artifact path
		recorded, err := os.ReadFile(sumPath)
		if err != nil {
			return fmt.Errorf("failed to read %s checksum: %w", alg.ext, err)
		}
		if got := strings.TrimSpace(string(recorded)); got != sums[i] {
			return fmt.Errorf("%w: %s %s: recorded %s, actual %s",
				ErrChecksumMismatch, filepath.Base(filePath), alg.ext, got, sums[i])
		}
	}

	return nil
}

// hashFile returns the hex digests of filePath in checksumAlgorithms order
func hashFile(filePath string) ([]string, error) {
	hashers := make([]hash.Hash, len(checksumAlgorithms))
	writers := make([]io.Writer, len(checksumAlgorithms))
	for i, alg := range checksumAlgorithms {
		hashers[i] = alg.new()
		writers[i] = hashers[i]
	}

	//nolint:gosec // G304: File path is a build artifact
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	if _, err := io.Copy(io.MultiWriter(writers...), f); err != nil {
		return nil, fmt.Errorf("failed to hash file: %w", err)
	}

	sums := make([]string, len(hashers))
	for i, h := range hashers {
		sums[i] = hex.EncodeToString(h.Sum(nil))
	}
	return sums, nil
}
