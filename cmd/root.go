package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugMode  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "courtside",
	Short: "Fantasy basketball stats terminal",
	Long: `courtside is a keyboard-driven terminal for fantasy basketball stats.
It shows a focused player, a comparison set of up to four players, a
watchlist and the ranked player list side by side, and remembers your
layout and watchlist between sessions.

Run without a subcommand to open the terminal. Use --no-tui for a
line-oriented prompt instead.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown commands, unreachable backend)
	SilenceUsage: true,
	RunE:         runTerminal,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "courtside version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file to use instead of ~/.config/courtside/config.yaml and .courtside/config.yaml")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	addTerminalFlags(rootCmd)

	rootCmd.AddCommand(newTerminalCmd())
	rootCmd.AddCommand(newExecCmd())
	rootCmd.AddCommand(newStateCmd())
	rootCmd.AddCommand(newPanelsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
