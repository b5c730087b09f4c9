package cmd

import (
	"fmt"
	"io"

	"onboardctl/internal/cli"
	"onboardctl/internal/onboarding"

	"github.com/spf13/cobra"
)

var statusOutput string

// statusColumns orders table output.
var statusColumns = []string{"step", "label", "known", "backStep", "component", "decorated", "decorator", "nextStep"}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored wizard position",
		Long: `Shows the step the wizard will open at, where going back leads and
whether the step's screen saves settings.`,
		Args: cobra.NoArgs,
		RunE: runStatus,
	}
	cmd.Flags().StringVarP(&statusOutput, "output", "o", "text", "Output format: text, table, json or yaml")
	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	application, err := newApplication(nil)
	if err != nil {
		return err
	}
	return printStatus(cmd.OutOrStdout(), application.Services().Navigator().Status(), statusOutput)
}

func printStatus(w io.Writer, st onboarding.Status, format string) error {
	if format == "text" {
		printStatusText(w, st)
		return nil
	}
	of, err := cli.ParseOutputFormat(format)
	if err != nil {
		return err
	}
	return cli.NewPrinter(w, of).Print(st, statusColumns...)
}

func printStatusText(w io.Writer, st onboarding.Status) {
	fmt.Fprintf(w, "Step:      %s (%s)\n", st.Step, st.Label)
	if !st.Known {
		fmt.Fprintln(w, "           unknown step, the wizard shows the header only")
	}
	back := string(st.BackStep)
	if back == "" {
		back = "-"
	}
	fmt.Fprintf(w, "Back step: %s\n", back)
	if st.Decorated {
		fmt.Fprintf(w, "Saves:     %s settings, then %s\n", st.Decorator, st.NextStep)
	}
}
