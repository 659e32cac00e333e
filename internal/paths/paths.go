// Package paths resolves the per-user data directory that holds the
// clipboard history database.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppDirName is the fixed subdirectory under the platform data directory.
const AppDirName = "clipm"

// EnvDataDir overrides the data directory location when set.
const EnvDataDir = "CLIPM_DATA_DIR"

// DefaultDataDir returns the platform-specific default data directory:
// $XDG_DATA_HOME/clipm on Linux, ~/Library/Application Support/clipm on
// macOS, %LOCALAPPDATA%/clipm on Windows.
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > config file value > CLIPM_DATA_DIR env > platform default.
// The returned path is absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir(), nil
}
