package cmd

import (
	"fmt"

	"onboardctl/internal/onboarding"

	"github.com/spf13/cobra"
)

var setStepForce bool

func newSetStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-step <step>",
		Short: "Move the stored wizard position to a step",
		Long: fmt.Sprintf(`Moves the stored wizard position to a step. The back step is derived
from the new step.

Known steps: %v`, onboarding.Steps()),
		Args:      cobra.ExactArgs(1),
		ValidArgs: stepNames(),
		RunE:      runSetStep,
	}
	cmd.Flags().BoolVar(&setStepForce, "force", false, "Accept a step outside the known steps")
	return cmd
}

func newBackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Move the stored wizard position back one step",
		Args:  cobra.NoArgs,
		RunE:  runBack,
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored wizard position",
		Long:  `Forgets the stored wizard position so the next run starts at the connect step.`,
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
}

func stepNames() []string {
	steps := onboarding.Steps()
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, string(s))
	}
	return names
}

func runSetStep(cmd *cobra.Command, args []string) error {
	step, err := onboarding.ParseStep(args[0])
	if err != nil {
		if !setStepForce {
			return fmt.Errorf("%w (use --force to store it anyway)", err)
		}
		step = onboarding.Step(args[0])
	}

	application, err := newApplication(nil)
	if err != nil {
		return err
	}
	nav := application.Services().Navigator()
	if !nav.SetStep(step) {
		fmt.Fprintf(cmd.OutOrStdout(), "Already at %s\n", step)
		return nil
	}
	return printStatus(cmd.OutOrStdout(), nav.Status(), "text")
}

func runBack(cmd *cobra.Command, args []string) error {
	application, err := newApplication(nil)
	if err != nil {
		return err
	}
	nav := application.Services().Navigator()
	if _, ok := nav.Back(); !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Nothing to go back to from %s\n", nav.Step())
		return nil
	}
	return printStatus(cmd.OutOrStdout(), nav.Status(), "text")
}

func runReset(cmd *cobra.Command, args []string) error {
	application, err := newApplication(nil)
	if err != nil {
		return err
	}
	if err := application.Services().Reset(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wizard position reset")
	return nil
}
