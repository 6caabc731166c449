package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLogLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(dir, LevelInfo)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("pane spawned", "shell", "bash")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	entries := readLogLines(t, filepath.Join(dir, "sigmaterm.log"))
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if entries[0]["msg"] != "pane spawned" {
		t.Errorf("msg = %v, want %q", entries[0]["msg"], "pane spawned")
	}
	if entries[0]["shell"] != "bash" {
		t.Errorf("shell = %v, want %q", entries[0]["shell"], "bash")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(dir, LevelWarn)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")
	logger.Error("also kept")
	logger.Close()

	entries := readLogLines(t, filepath.Join(dir, "sigmaterm.log"))
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
}

func TestChildLoggerAttributes(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(dir, LevelDebug)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	child := logger.WithComponent("session").WithPane(3)
	child.Info("output polled")

	// The parent must not inherit the child's attributes.
	logger.Info("plain entry")
	logger.Close()

	entries := readLogLines(t, filepath.Join(dir, "sigmaterm.log"))
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0]["component"] != "session" {
		t.Errorf("component = %v, want %q", entries[0]["component"], "session")
	}
	if entries[0]["pane"] != float64(3) {
		t.Errorf("pane = %v, want 3", entries[0]["pane"])
	}
	if _, ok := entries[1]["pane"]; ok {
		t.Error("parent logger leaked child attribute")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"DEBUG", "DEBUG"},
		{"debug", "DEBUG"},
		{"Warn", "WARN"},
		{"bogus", "INFO"},
		{"", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got.String() != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	logger := Nop()
	logger.Debug("a")
	logger.Info("b", "k", "v")
	logger.Warn("c")
	logger.Error("d")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
