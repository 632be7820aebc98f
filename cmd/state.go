package cmd

import (
	"courtside/internal/app"
	"courtside/internal/panels"
	"courtside/internal/repl"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newStateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "state",
		Short: "Inspect or reset the saved terminal state",
	}
	c.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved layout, stat window, watchlist and recent views",
		Args:  cobra.NoArgs,
		RunE:  runStateShow,
	})
	c.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default layout and clear the watchlist and recent views",
		Args:  cobra.NoArgs,
		RunE:  runStateReset,
	})
	c.AddCommand(&cobra.Command{
		Use:   "unwatch <id>...",
		Short: "Remove players from the saved watchlist by id",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runStateUnwatch,
	})
	c.AddCommand(&cobra.Command{
		Use:   "panels <id>...",
		Short: "Set the center panel stack, top to bottom",
		Long: `Set the center panel stack, top to bottom. Repeated ids are ignored.

Player comparison is not saved between sessions; use
  courtside exec ":uncompare <name>"
to edit it from the command line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runStatePanels,
	})
	return c
}

func runStateShow(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(app.NewConfig(true, debugMode, configPath))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), repl.Describe(application.Services().State))
	return application.Close()
}

func runStateReset(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(app.NewConfig(true, debugMode, configPath))
	if err != nil {
		return err
	}
	application.Services().State.Reset()
	if err := application.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Terminal state reset.")
	return nil
}

func runStateUnwatch(cmd *cobra.Command, args []string) error {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid player id %q", arg)
		}
		ids[i] = id
	}

	application, err := app.NewApplication(app.NewConfig(true, debugMode, configPath))
	if err != nil {
		return err
	}
	state := application.Services().State
	for _, id := range ids {
		if state.RemoveFromWatchlist(id) {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d from watchlist\n", id)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%d is not on the watchlist\n", id)
		}
	}
	return application.Close()
}

func runStatePanels(cmd *cobra.Command, args []string) error {
	ids := make([]string, len(args))
	for i, arg := range args {
		id := strings.ToLower(arg)
		if _, ok := panels.Get(id); !ok {
			known := make([]string, 0, len(panels.All()))
			for _, d := range panels.All() {
				known = append(known, d.ID)
			}
			return fmt.Errorf("unknown panel %q (valid: %s)", arg, strings.Join(known, ", "))
		}
		ids[i] = id
	}

	application, err := app.NewApplication(app.NewConfig(true, debugMode, configPath))
	if err != nil {
		return err
	}
	ids = panels.Valid(ids)
	application.Services().State.SetCenterPanels(ids)
	if err := application.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Center panels: %s\n", strings.Join(ids, ", "))
	return nil
}
