package config

import "time"

// Default values.
const (
	DefaultTitle               = "Square onboarding"
	DefaultLogLevel            = "info"
	DefaultBasePath            = "/wp-json/wc/v3"
	DefaultSquareSettingsPath  = "wc_square/settings"
	DefaultGatewaySettingsPath = "wc_square/payment_settings"
	DefaultConnectPath         = "/wp-admin/admin.php?page=wc-settings&tab=square"
	DefaultTimeout             = 15 * time.Second
	DefaultRetryMax            = 3
)

// GetDefaultConfig returns the compiled-in configuration.
func GetDefaultConfig() OnboardConfig {
	return OnboardConfig{
		Title:    DefaultTitle,
		LogLevel: DefaultLogLevel,
		API: APIConfig{
			BasePath:            DefaultBasePath,
			SquareSettingsPath:  DefaultSquareSettingsPath,
			GatewaySettingsPath: DefaultGatewaySettingsPath,
			ConnectPath:         DefaultConnectPath,
			Username:            "${ONBOARDCTL_USER}",
			Password:            "${ONBOARDCTL_APP_PASSWORD}",
			Timeout:             DefaultTimeout,
			RetryMax:            DefaultRetryMax,
		},
	}
}
