package app

import (
	"context"
	"io"

	"onboardctl/internal/mcpserver"
	"onboardctl/internal/tui/controller"
	"onboardctl/pkg/logging"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	src, err := services.Settings()
	if err != nil {
		return err
	}
	nav := services.Navigator()

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(cfg.logLevel(cfg.Onboard.LogLevel))
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(nav, src, controller.ProgramOptions{
		Title:      cfg.Onboard.Title,
		ConnectURL: cfg.Onboard.ConnectURL(),
		DebugMode:  cfg.Debug,
		LogChannel: logChan,
		Context:    ctx,
	})

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited at step %s.", nav.Step())
	return nil
}

// runMCPMode serves the navigator over MCP stdio.
func runMCPMode(ctx context.Context, cfg *Config, services *Services, in io.Reader, out io.Writer) error {
	src, err := services.Settings()
	if err != nil {
		return err
	}
	return mcpserver.New(services.Navigator(), src, cfg.Version).ServeStdio(ctx, in, out)
}
