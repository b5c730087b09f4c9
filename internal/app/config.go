package app

import (
	"onboardctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath is an explicit config file layered on top of the defaults.
	ConfigPath string
	// Site overrides the configured site URL.
	Site string

	// Debug settings
	Debug bool

	// Ephemeral keeps the wizard position in memory only.
	Ephemeral bool
	// OfflineConnected replaces the settings API with an offline source
	// that reports a connected account.
	OfflineConnected bool

	Version string

	// Onboard is the loaded configuration, set by NewApplication.
	Onboard *config.OnboardConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath, site string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Site:       site,
		Debug:      debug,
	}
}
