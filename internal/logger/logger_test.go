package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetAfter(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose(t *testing.T) {
	resetAfter(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("fetching profile %s", "abc123")

	if got := buf.String(); got != "[DEBUG] fetching profile abc123\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestInfoAndWarn_GatedByVerbose(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(false)
	Info("hidden")
	Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	SetVerbose(true)
	Info("visible %d", 1)
	Warn("visible %d", 2)

	want := "[INFO] visible 1\n[WARN] visible 2\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestError_AlwaysPrints(t *testing.T) {
	resetAfter(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Error("lookup failed: %v", "timeout")

	if got := buf.String(); got != "[ERROR] lookup failed: timeout\n" {
		t.Errorf("unexpected output: %q", got)
	}
}
