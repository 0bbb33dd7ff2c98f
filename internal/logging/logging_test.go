package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "lilt.log")

	logger, err := New("debug", file)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hello")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty, want at least one entry")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lilt.log")
	if _, err := New("loud", file); err == nil {
		t.Error("New() error = nil, want error for unknown level")
	}
}

func TestNewRespectsLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lilt.log")

	logger, err := New("error", file)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("should be filtered")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("log file has %d bytes, want 0 for filtered entry", len(data))
	}
}
