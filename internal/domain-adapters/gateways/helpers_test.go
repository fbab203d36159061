package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/konasuite/konabuild/internal/domain/interfaces"
)

// writeScript creates an executable shell script in a temp dir
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes require a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), name)
	//nolint:gosec // G306: test executable must be runnable
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

// recordingLogger keeps every rendered log line
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) Debug(msg string, fields ...interfaces.Field) { r.log("DEBUG", msg, fields) }
func (r *recordingLogger) Info(msg string, fields ...interfaces.Field)  { r.log("INFO", msg, fields) }
func (r *recordingLogger) Warn(msg string, fields ...interfaces.Field)  { r.log("WARN", msg, fields) }
func (r *recordingLogger) Error(msg string, fields ...interfaces.Field) { r.log("ERROR", msg, fields) }

func (r *recordingLogger) log(level, msg string, fields []interfaces.Field) {
	var b strings.Builder
	b.WriteString(level + " " + msg)
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, b.String())
}

func (r *recordingLogger) joined() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.lines, "\n")
}
