package cmd

import (
	"os"

	"onboardctl/internal/app"

	"github.com/spf13/cobra"
)

var (
	configPath string
	siteURL    string
	debugMode  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "onboardctl",
	Short: "Walk a merchant through Square payment onboarding",
	Long: `onboardctl runs the Square onboarding wizard of a WooCommerce shop in the
terminal: connect the Square account, pick a business location, set up
payment methods and review the plugin settings.

The wizard remembers where you left off for each site. Run without a
subcommand to open it.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed connections)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "onboardctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps the application from the global flags.
func newApplication(configure func(*app.Config)) (*app.Application, error) {
	cfg := app.NewConfig(configPath, siteURL, debugMode)
	cfg.Version = rootCmd.Version
	if configure != nil {
		configure(cfg)
	}
	return app.NewApplication(cfg)
}

func init() {
	// Set here rather than in the literal: runWizard reads rootCmd.
	rootCmd.RunE = runWizard

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file layered over ~/.config/onboardctl/config.yaml and ./.onboardctl/config.yaml")
	rootCmd.PersistentFlags().StringVar(&siteURL, "site", "", "Shop URL, overrides the configured site")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newWizardCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newStepsCmd())
	rootCmd.AddCommand(newSetStepCmd())
	rootCmd.AddCommand(newBackCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
