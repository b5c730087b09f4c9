package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"onboardctl/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

const (
	scopeUser    = "user"
	scopeProject = "project"
)

// initAnswers collects the answers of the init form.
type initAnswers struct {
	Site     string
	Username string
	Title    string
	Scope    string
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Asks for the shop URL and API user and writes them to the user
(~/.config/onboardctl/config.yaml) or project (./.onboardctl/config.yaml)
configuration. The application password is never written; it is read from
ONBOARDCTL_APP_PASSWORD at run time.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	answers := initAnswers{Title: config.DefaultTitle, Scope: scopeUser}
	if err := askInit(ctx, &answers); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted, nothing written")
			return nil
		}
		return err
	}

	path, err := initConfigPath(answers.Scope)
	if err != nil {
		return err
	}
	if err := config.WriteConfig(path, answers.toConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}

func askInit(ctx context.Context, answers *initAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Shop URL").
				Description("Base URL of the WooCommerce shop running the Square plugin").
				Placeholder("https://shop.example.com").
				Value(&answers.Site).
				Validate(validateSiteURL),
			huh.NewInput().
				Title("API user").
				Description("WordPress user owning the application password").
				Value(&answers.Username),
			huh.NewInput().
				Title("Wizard title").
				Value(&answers.Title),
		).Title("Shop"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Save to").
				Options(
					huh.NewOption("User config (~/.config/onboardctl)", scopeUser),
					huh.NewOption("Project config (./.onboardctl)", scopeProject),
				).
				Value(&answers.Scope),
		).Title("Location"),
	).RunWithContext(ctx)
}

func (a initAnswers) toConfig() config.OnboardConfig {
	cfg := config.OnboardConfig{
		Site:  strings.TrimRight(strings.TrimSpace(a.Site), "/"),
		Title: strings.TrimSpace(a.Title),
		API: config.APIConfig{
			Username: strings.TrimSpace(a.Username),
			Password: "${ONBOARDCTL_APP_PASSWORD}",
		},
	}
	if cfg.Title == config.DefaultTitle {
		cfg.Title = ""
	}
	return cfg
}

func initConfigPath(scope string) (string, error) {
	if scope == scopeProject {
		return config.ProjectConfigPath()
	}
	return config.UserConfigPath()
}

func validateSiteURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("shop URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", s)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}
