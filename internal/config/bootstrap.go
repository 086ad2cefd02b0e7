package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// userConfigName is the file the engine reads and edits inside the data
// dir; the packaged default only seeds it.
const userConfigName = "config.yml"

// EnsureUserConfig makes sure the data dir holds a config file, seeding it
// from the packaged default on first run. An existing file is never
// touched, so user edits survive upgrades.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, userConfigName)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	seed, err := os.ReadFile(defaultPath)
	if err != nil {
		return "", fmt.Errorf("reading packaged config: %w", err)
	}
	if err := os.WriteFile(userPath, seed, 0o644); err != nil {
		return "", fmt.Errorf("seeding user config: %w", err)
	}
	return userPath, nil
}
