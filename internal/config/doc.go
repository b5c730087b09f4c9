// Package config provides configuration management for onboardctl.
//
// Configuration is loaded from YAML files and merged in order, later sources
// overriding fields set in earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/onboardctl/config.yaml)
//  3. Project configuration (./.onboardctl/config.yaml)
//  4. An explicit file passed with --config
//
// # Configuration Structure
//
//	site: https://shop.example.com
//	title: Square onboarding
//	stateDir: ~/.config/onboardctl/state
//	logLevel: info
//	api:
//	  basePath: /wp-json/wc/v3
//	  squareSettingsPath: wc_square/settings
//	  gatewaySettingsPath: wc_square/payment_settings
//	  connectPath: /wp-admin/admin.php?page=wc-settings&tab=square
//	  username: ${ONBOARDCTL_USER}
//	  password: ${ONBOARDCTL_APP_PASSWORD}
//	  timeout: 15s
//	  retryMax: 3
//
// Credentials support environment variable expansion so they never have to
// be written to disk.
package config
