package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true)
	l.Debug("cloning", "name", "foo")

	out := buf.String()
	if !strings.Contains(out, "cloning") || !strings.Contains(out, "name=foo") {
		t.Errorf("debug line missing from verbose output: %q", out)
	}
}

func TestNewQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Info("also hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("non-verbose logger emitted debug/info: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warning missing: %q", out)
	}
}
