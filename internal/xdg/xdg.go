// Package xdg provides helpers to resolve XDG Base Directory paths for tunestat.
// It determines the appropriate location for configuration files on Unix-like
// systems, falling back to the traditional dotfile location when the XDG
// environment variables are not set.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for tunestat.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/tunestat when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "tunestat")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
