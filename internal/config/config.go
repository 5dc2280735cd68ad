// Package config resolves where optdeps keeps its state.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the state directory.
const AppName = "optdeps"

// StateDir returns the optdeps state directory, respecting XDG_STATE_HOME.
// Defaults to ~/.local/state/optdeps if XDG_STATE_HOME is not set.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(base, AppName), nil
}

// DefaultDBPath returns the history database path inside StateDir,
// creating the directory if needed.
func DefaultDBPath() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create state directory: %w", err)
	}
	return filepath.Join(dir, "history.db"), nil
}
