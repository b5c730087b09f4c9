package cmd

import (
	"onboardctl/internal/cli"
	"onboardctl/internal/onboarding"

	"github.com/spf13/cobra"
)

var stepsOutput string

func newStepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the wizard steps",
		Long: `Lists every wizard step with the step going back leads to and the
settings its screen saves, if any.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(stepsOutput)
			if err != nil {
				return err
			}
			steps := onboarding.Steps()
			rows := make([]onboarding.Status, 0, len(steps))
			for _, step := range steps {
				rows = append(rows, onboarding.Describe(step))
			}
			return cli.NewPrinter(cmd.OutOrStdout(), format).Print(rows, "step", "label", "backStep", "decorator", "nextStep")
		},
	}
	cmd.Flags().StringVarP(&stepsOutput, "output", "o", "table", "Output format: table, json or yaml")
	return cmd
}
