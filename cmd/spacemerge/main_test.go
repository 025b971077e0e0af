package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestModeID(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		wantErr  bool
	}{
		{"", "spacemerge", false},
		{"classic", "spacemerge", false},
		{"Pixel", "spacemerge_pixel", false},
		{"spacemerge_pixel", "spacemerge_pixel", false},
		{"tetris", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := modeID(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("modeID(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("modeID(%q) = %q, expected %q", tc.name, got, tc.expected)
			}
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "spacemerge.log")

	l, f, err := newLogger(path, true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	l.Debug("merged", "into", "Mars")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "merged") || !strings.Contains(string(data), "Mars") {
		t.Errorf("log file missing debug entry: %q", data)
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	l, f, err := newLogger("", false)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if f != nil {
		t.Error("no file should be opened without a path")
	}
	l.Info("dropped")
}
