package cmd

import (
	"context"

	"onboardctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	wizardEphemeral        bool
	wizardOfflineConnected bool
)

func newWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Open the onboarding wizard",
		Long: `Opens the interactive onboarding wizard at the step where it was left.

Keys: arrows or j/k move, enter selects, space toggles a setting, s saves,
esc or b goes back, r re-checks the Square connection, y copies the connect
URL, L shows the activity log, ? shows help and q quits.`,
		Args: cobra.NoArgs,
		RunE: runWizard,
	}
	cmd.Flags().BoolVar(&wizardEphemeral, "ephemeral", false, "Keep the wizard position in memory only")
	cmd.Flags().BoolVar(&wizardOfflineConnected, "offline-connected", false, "Run without the shop API, as if the Square account were connected")
	return cmd
}

func runWizard(cmd *cobra.Command, args []string) error {
	application, err := newApplication(func(cfg *app.Config) {
		cfg.Ephemeral = wizardEphemeral
		cfg.OfflineConnected = wizardOfflineConnected
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.RunWizard(ctx)
}
