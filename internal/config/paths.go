package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName = ".spinwheel"

	// DataDirEnv overrides where the items slot is stored.
	DataDirEnv = "SPINWHEEL_DATA_DIR"
)

// GlobalDir returns the user-global directory (~/.spinwheel/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the default config path.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// DataDir returns the default storage directory.
func DataDir() string {
	return filepath.Join(GlobalDir(), "data")
}

// LogFile returns where the interactive UI writes debug logs.
func LogFile(dataDir string) string {
	return filepath.Join(dataDir, "wheel.log")
}
