package config

import (
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path, used by
// `monitorr init` when no path is given.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./monitorr.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "monitorr", "config.toml")
}
