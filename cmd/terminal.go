package cmd

import (
	"context"
	"courtside/internal/app"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	noTUI       bool
	historyFile string
)

func addTerminalFlags(c *cobra.Command) {
	c.Flags().BoolVar(&noTUI, "no-tui", false, "Use the line-oriented prompt instead of the terminal UI")
	c.Flags().StringVar(&historyFile, "history-file", "", "Prompt history file (default ~/.config/courtside/history)")
}

func newTerminalCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "terminal",
		Short: "Open the stats terminal (default)",
		Long: `Opens the stats terminal. Panels, the stat window and the watchlist are
restored from the configured store and saved again as they change.

With --no-tui a readline prompt accepts the same commands:
  :window <season|l5|l10|l20>   :layout <default|chart|comparison|data>
  :compare <name>   :focus <name>   :clear`,
		Args: cobra.NoArgs,
		RunE: runTerminal,
	}
	addTerminalFlags(c)
	return c
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(noTUI, debugMode, configPath)
	cfg.HistoryFile = historyFile

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to start courtside: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return application.Run(ctx)
}
