package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"onboardctl/internal/app"

	"github.com/spf13/cobra"
)

var mcpOfflineConnected bool

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the onboarding wizard as MCP tools over stdio",
		Long: `Serves the onboarding wizard as MCP tools over stdin/stdout so an AI
assistant can inspect and move the wizard:

  onboarding_status            current step, back step and save target
  onboarding_set_step          move to a step
  onboarding_back              go back one step
  onboarding_check_connection  reload settings and leave the connect step
                               once the Square account is connected`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
	cmd.Flags().BoolVar(&mcpOfflineConnected, "offline-connected", false, "Run without the shop API, as if the Square account were connected")
	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := newApplication(func(cfg *app.Config) {
		cfg.OfflineConnected = mcpOfflineConnected
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return application.ServeMCP(ctx, os.Stdin, os.Stdout)
}
