package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfigPath returns the path of the user configuration file.
func UserConfigPath() (string, error) {
	return getUserConfigPath()
}

// ProjectConfigPath returns the path of the project configuration file.
func ProjectConfigPath() (string, error) {
	return getProjectConfigPath()
}

// WriteConfig writes cfg as YAML to path, creating parent directories.
// Only non-zero fields are written so the file stays a thin overlay.
func WriteConfig(path string, cfg OnboardConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("error writing config to %s: %w", path, err)
	}
	return nil
}
