// Package logging builds the zap logger used across lilt. Logs go to a
// file rather than stderr so the terminal UI keeps sole ownership of the
// screen.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultFile returns the default log file path.
func DefaultFile() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(cache, "lilt", "lilt.log"), nil
}

// New builds a production logger writing to the given file at the given
// level. An empty file selects the default location; an empty level means
// info.
func New(level, file string) (*zap.Logger, error) {
	if file == "" {
		var err error
		file, err = DefaultFile()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	lvl := zap.InfoLevel
	if level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed.Level()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
