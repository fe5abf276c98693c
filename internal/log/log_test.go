package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// capture swaps the output and level for the duration of a test.
func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(l)
	t.Cleanup(func() {
		SetLevel(saved)
		SetOutput(nil)
	})
	return &buf
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t, LevelInfo)

	Debug("hidden %d", 1)
	Info("shown %d", 2)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line emitted at info level: %q", got)
	}
	if !strings.Contains(got, "[INFO] shown 2") {
		t.Errorf("info line missing: %q", got)
	}
}

func TestAllLevelsAtDebug(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	want := "[DEBUG] d\n[INFO] i\n[WARN] w\n[ERROR] e\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, LevelWarn)

	Info("quiet")
	Error("loud")

	if got := buf.String(); got != "[ERROR] loud\n" {
		t.Errorf("output = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"debug", "DEBUG", true},
		{"INFO", "INFO", true},
		{"", "INFO", true},
		{"warning", "WARN", true},
		{"error", "ERROR", true},
		{"chatty", "INFO", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got.String() != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = %v, %v; want %s, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
