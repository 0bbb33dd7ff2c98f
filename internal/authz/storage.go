package authz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDecisionFileName is the default name for the decision file.
	DefaultDecisionFileName = "authorization.json"
)

// Storage handles persisting authorization decisions to disk.
type Storage struct {
	path string
}

// NewStorage creates decision storage at the specified path.
// If path is empty, uses the default location (~/.config/lilt/authorization.json).
func NewStorage(path string) (*Storage, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		path = filepath.Join(configDir, "lilt", DefaultDecisionFileName)
	}

	return &Storage{path: path}, nil
}

// Save persists a decision to disk.
func (s *Storage) Save(d *Decision) error {
	// Ensure directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal decision: %w", err)
	}

	// Write with restricted permissions (owner only)
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write decision file: %w", err)
	}

	return nil
}

// Load reads a decision from disk.
func (s *Storage) Load() (*Decision, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No decision stored yet
		}
		return nil, fmt.Errorf("failed to read decision file: %w", err)
	}

	var d Decision
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse decision file: %w", err)
	}

	return &d, nil
}

// Delete removes the stored decision.
func (s *Storage) Delete() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete decision file: %w", err)
	}
	return nil
}

// Exists returns true if a decision file exists.
func (s *Storage) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Path returns the path to the decision file.
func (s *Storage) Path() string {
	return s.path
}
