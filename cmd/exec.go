package cmd

import (
	"context"
	"courtside/internal/app"
	"fmt"

	"github.com/spf13/cobra"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run terminal commands against the saved state",
		Long: `Runs each argument as one terminal command, prints its feedback and saves
the resulting state. Focus and comparison only last for the invocation, so
chained commands must be passed together:

  courtside exec ":window l10" ":layout chart"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExec,
	}
}

func runExec(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(app.NewConfig(true, debugMode, configPath))
	if err != nil {
		return err
	}
	interp := application.Services().Interpreter

	failed := 0
	for _, line := range args {
		res := interp.Execute(commandContext(cmd), line)
		if res.Feedback == "" {
			continue
		}
		if res.OK() {
			fmt.Fprintln(cmd.OutOrStdout(), res.Feedback)
		} else {
			failed++
			fmt.Fprintln(cmd.ErrOrStderr(), res.Feedback)
		}
	}

	if err := application.Close(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed", failed, len(args))
	}
	return nil
}

// commandContext falls back to a background context when cobra has none,
// as in tests that call RunE directly.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
