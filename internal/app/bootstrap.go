package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"onboardctl/internal/config"
	"onboardctl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application wires configuration, state and settings for one command.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and initializes services. Logs go to
// stderr so stdout stays free for command output and the MCP transport.
func NewApplication(cfg *Config) (*Application, error) {
	logging.InitForCLI(cfg.logLevel(""), os.Stderr)

	onboardCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Site != "" {
		onboardCfg.Site = cfg.Site
	}
	cfg.Onboard = &onboardCfg

	logging.InitForCLI(cfg.logLevel(onboardCfg.LogLevel), os.Stderr)
	logging.Debug(bootstrapSubsystem, "Loaded configuration for site %q", onboardCfg.Site)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{config: cfg, services: services}, nil
}

// Config returns the application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// RunWizard runs the interactive wizard until the merchant quits.
func (a *Application) RunWizard(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}

// ServeMCP serves the onboarding tools over the given streams.
func (a *Application) ServeMCP(ctx context.Context, in io.Reader, out io.Writer) error {
	return runMCPMode(ctx, a.config, a.services, in, out)
}

func (c *Config) logLevel(configured string) logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	level, ok := logging.ParseLevel(configured)
	if !ok {
		logging.Warn(bootstrapSubsystem, "Unknown log level %q, using info", configured)
	}
	return level
}
