package charmlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/konasuite/konabuild/internal/domain/interfaces"
)

func TestLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("jar signed", interfaces.F("artifact", "kona-crypto-1.0.5.jar"))
	l.Debug("hidden at info level")

	out := buf.String()
	if !strings.Contains(out, "jar signed") || !strings.Contains(out, "kona-crypto-1.0.5.jar") {
		t.Errorf("log output = %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Errorf("debug message written at info level: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", " warn ", "error"} {
		if _, err := ParseLevel(level); err != nil {
			t.Errorf("ParseLevel(%q) error = %v", level, err)
		}
	}
	if _, err := ParseLevel("chatty"); err == nil {
		t.Error("ParseLevel(\"chatty\") should fail")
	}
	if _, err := New(&bytes.Buffer{}, "chatty"); err == nil {
		t.Error("New() should reject an invalid level")
	}
}
