package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names under the configuration directory.
const (
	configFileName = "config.yaml"
	logFileName    = "vpnmenu.log"
)

// GetConfigDir returns the path to the vpnmenu configuration directory.
func GetConfigDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "vpnmenu"), nil
}

// DefaultConfigPath returns the location of config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultLogPath returns the location of the log file.
func DefaultLogPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}
