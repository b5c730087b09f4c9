package config

import "time"

// OnboardConfig is the top-level configuration.
type OnboardConfig struct {
	// Site is the base URL of the shop running the payment-gateway plugin.
	Site     string    `yaml:"site,omitempty"`
	Title    string    `yaml:"title,omitempty"`
	StateDir string    `yaml:"stateDir,omitempty"`
	LogLevel string    `yaml:"logLevel,omitempty"`
	API      APIConfig `yaml:"api,omitempty"`
}

// APIConfig describes how to reach the plugin's settings endpoints.
type APIConfig struct {
	BasePath            string        `yaml:"basePath,omitempty"`
	SquareSettingsPath  string        `yaml:"squareSettingsPath,omitempty"`
	GatewaySettingsPath string        `yaml:"gatewaySettingsPath,omitempty"`
	ConnectPath         string        `yaml:"connectPath,omitempty"`
	Username            string        `yaml:"username,omitempty"`
	Password            string        `yaml:"password,omitempty"`
	Timeout             time.Duration `yaml:"timeout,omitempty"`
	RetryMax            int           `yaml:"retryMax,omitempty"`
}
