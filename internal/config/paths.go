// ABOUTME: Standard filesystem path for the ntext settings file
// ABOUTME: Resolves $XDG_CONFIG_HOME/ntext/config.yaml, falling back to ~/.config

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "ntext"
	configFileName = "config.yaml"
)

// Dir returns the user config directory for ntext.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// DefaultFile returns the path of the settings file used when no
// --config flag is given.
func DefaultFile() string {
	return filepath.Join(Dir(), configFileName)
}
