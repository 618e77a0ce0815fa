// Package paths provides centralized path handling for devup.
// It implements XDG Base Directory specification compliance so that
// config, state and clone locations are consistent across commands.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the config file location
	EnvConfigFile = "DEVUP_CONFIG_FILE"

	// EnvCloneDir overrides the default clone target directory
	EnvCloneDir = "DEVUP_CLONE_DIR"
)

// AppDirName is the directory name for devup-specific files
const AppDirName = "devup"

// ConfigFileName is the name of the devup configuration file
const ConfigFileName = "devup.toml"

// ConfigFile returns the path to the user configuration file.
// DEVUP_CONFIG_FILE takes precedence over the XDG config directory.
func ConfigFile() string {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// DefaultCloneDir returns the default target directory for cloned
// repositories. DEVUP_CLONE_DIR takes precedence; otherwise repositories
// land in ~/src.
func DefaultCloneDir() string {
	if override := os.Getenv(EnvCloneDir); override != "" {
		return override
	}
	return filepath.Join(xdg.Home, "src")
}
