package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromEnvironment(t *testing.T) {
	tests := []struct {
		level      string
		debugShown bool
		infoShown  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"warn", false, false},
		{"error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Setenv("X86DIS_LOG_LEVEL", tt.level)
			var buf bytes.Buffer
			lg := NewLoggerWithWriter(&buf)
			lg.Debug("debug line")
			lg.Info("info line")
			if got := strings.Contains(buf.String(), "debug line"); got != tt.debugShown {
				t.Errorf("debug shown = %v, want %v", got, tt.debugShown)
			}
			if got := strings.Contains(buf.String(), "info line"); got != tt.infoShown {
				t.Errorf("info shown = %v, want %v", got, tt.infoShown)
			}
			if IsDebug() != (tt.level == "debug") {
				t.Errorf("IsDebug() = %v", IsDebug())
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	t.Setenv("X86DIS_LOG_PREFIX", "")
	var buf bytes.Buffer
	NewLoggerWithWriter(&buf).Warn("hello")
	if !strings.Contains(buf.String(), "x86dis") {
		t.Errorf("default prefix missing: %q", buf.String())
	}

	t.Setenv("X86DIS_LOG_PREFIX", "decoder")
	buf.Reset()
	NewLoggerWithWriter(&buf).Warn("hello")
	if !strings.Contains(buf.String(), "decoder") {
		t.Errorf("custom prefix missing: %q", buf.String())
	}
}

func TestCloseWithoutCloser(t *testing.T) {
	lg := NewLoggerWithWriter(&bytes.Buffer{})
	if err := lg.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestUnknownLevel(t *testing.T) {
	t.Setenv("X86DIS_LOG_LEVEL", "chatty")
	var buf bytes.Buffer
	NewLoggerWithWriter(&buf).Info("info line")
	if !strings.Contains(buf.String(), "info line") {
		t.Errorf("unknown level should fall back to info: %q", buf.String())
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x86dis.log")
	t.Setenv("X86DIS_LOG_FILE", path)
	lg := NewLogger()
	lg.Warn("to file")
	if err := lg.Close(); err != nil {
		t.Fatal(err)
	}
	if err := lg.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "to file") {
		t.Errorf("log file lacks message: %q", b)
	}
}
