package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/onboardctl"
	projectConfigDir = ".onboardctl"
	configFileName   = "config.yaml"
	stateDirName     = "state"
)

// LoadConfig loads the configuration by layering default, user, project and
// explicit settings. explicitPath may be empty; when set the file must exist.
func LoadConfig(explicitPath string) (OnboardConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = mergeIfExists(config, userConfigPath); err != nil {
		return OnboardConfig{}, err
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = mergeIfExists(config, projectConfigPath); err != nil {
		return OnboardConfig{}, err
	}

	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return OnboardConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicitConfig)
	}

	config.API.Username = os.ExpandEnv(config.API.Username)
	config.API.Password = os.ExpandEnv(config.API.Password)

	return config, nil
}

func mergeIfExists(base OnboardConfig, path string) (OnboardConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return OnboardConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an OnboardConfig from a YAML file.
func loadConfigFromFile(filePath string) (OnboardConfig, error) {
	var config OnboardConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return OnboardConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return OnboardConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay OnboardConfig) OnboardConfig {
	merged := base

	if overlay.Site != "" {
		merged.Site = overlay.Site
	}
	if overlay.Title != "" {
		merged.Title = overlay.Title
	}
	if overlay.StateDir != "" {
		merged.StateDir = overlay.StateDir
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	api := overlay.API
	if api.BasePath != "" {
		merged.API.BasePath = api.BasePath
	}
	if api.SquareSettingsPath != "" {
		merged.API.SquareSettingsPath = api.SquareSettingsPath
	}
	if api.GatewaySettingsPath != "" {
		merged.API.GatewaySettingsPath = api.GatewaySettingsPath
	}
	if api.ConnectPath != "" {
		merged.API.ConnectPath = api.ConnectPath
	}
	if api.Username != "" {
		merged.API.Username = api.Username
	}
	if api.Password != "" {
		merged.API.Password = api.Password
	}
	if api.Timeout != 0 {
		merged.API.Timeout = api.Timeout
	}
	if api.RetryMax != 0 {
		merged.API.RetryMax = api.RetryMax
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// ResolveStateDir returns the directory holding per-site state files,
// expanding a leading "~" and defaulting to the user config directory.
func (c OnboardConfig) ResolveStateDir() (string, error) {
	dir := c.StateDir
	if dir == "" {
		userDir, err := GetUserConfigDir()
		if err != nil {
			return "", fmt.Errorf("error resolving state directory: %w", err)
		}
		return filepath.Join(userDir, stateDirName), nil
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		homeDir, err := osUserHomeDir()
		if err != nil {
			return "", fmt.Errorf("error resolving state directory: %w", err)
		}
		dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}

// ConnectURL is the admin page where the merchant connects a Square account.
func (c OnboardConfig) ConnectURL() string {
	if c.Site == "" {
		return ""
	}
	return strings.TrimRight(c.Site, "/") + "/" + strings.TrimLeft(c.API.ConnectPath, "/")
}
