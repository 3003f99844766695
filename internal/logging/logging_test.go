package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tc.level)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			logger.Debug("debug line")
			logger.Info("info line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tc.debugSeen {
				t.Errorf("debug line present = %v, expected %v", got, tc.debugSeen)
			}
			if got := strings.Contains(out, "info line"); got != tc.infoSeen {
				t.Errorf("info line present = %v, expected %v", got, tc.infoSeen)
			}
			if tc.infoSeen && !strings.Contains(out, Prefix) {
				t.Errorf("expected prefix %q in %q", Prefix, out)
			}
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestWithRun(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}

	id := NewRunID()
	WithRun(logger, id).Info("run started")

	if !strings.Contains(buf.String(), "run="+id) {
		t.Errorf("expected run field in %q", buf.String())
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if a == b {
		t.Error("run ids should differ")
	}
	if !strings.HasPrefix(a, "r_") || len(a) != 10 {
		t.Errorf("unexpected run id %q", a)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "moonpatrol.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	if _, err := f.WriteString("first\n"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	// Reopening appends
	f, err = OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("second\n")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("file contents = %q", data)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.moonpatrol/moonpatrol.log")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".moonpatrol", "moonpatrol.log") {
		t.Errorf("ExpandHome() = %q", got)
	}

	got, _ = ExpandHome("/tmp/x.log")
	if got != "/tmp/x.log" {
		t.Errorf("absolute path should be unchanged, got %q", got)
	}
}
