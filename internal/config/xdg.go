// Package config provides configuration management for slate with Viper
// integration and XDG Base Directory compliance.
package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "slate"
	databaseName = "slate.sqlite"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// xdgDir resolves one XDG base directory: the environment override when
// set, the given fallback under the home directory otherwise, with the
// app name appended. ENV=dev redirects everything into .dev under the
// working directory so a development run never touches the real dirs.
func xdgDir(envVar string, fallback ...string) (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(append([]string{home}, fallback...)...)
	}
	return filepath.Join(base, appName), nil
}

// GetConfigDir returns the slate config directory, normally
// ~/.config/slate.
func GetConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetDataDir returns the slate data directory, normally
// ~/.local/share/slate.
func GetDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetConfigFile returns the path of the main configuration file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetDatabaseFile returns the path of the session database. Stored
// geometry is user data, so it lives in XDG_DATA_HOME.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// EnsureDirectories creates the config and data directories if missing.
func EnsureDirectories() error {
	for _, get := range []func() (string, error){GetConfigDir, GetDataDir} {
		dir, err := get()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
