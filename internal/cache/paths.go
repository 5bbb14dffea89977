// Package cache provides a BadgerDB-backed memoization layer for perft node
// counts, so repeated runs over the same position and depth (common while
// bisecting a discrepancy against a reference engine) skip the recursive
// walk entirely.
package cache

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "movecore"

// DefaultDir returns the platform-specific data directory used when no
// explicit path is supplied to Open.
//   - macOS: ~/Library/Application Support/movecore/perft
//   - Linux: ~/.local/share/movecore/perft
//   - Windows: %APPDATA%/movecore/perft
func DefaultDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName, "perft")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
