package app

import (
	"context"
	"courtside/internal/config"
	"courtside/internal/repl"
	"courtside/internal/tui/controller"
	"courtside/internal/tui/design"
	"courtside/internal/tui/model"
	"courtside/pkg/logging"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

const historyFileName = "history"

// runREPLMode runs the line-oriented front end until the user exits.
func runREPLMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Debug("REPL", "Running in no-TUI mode.")

	r := repl.New(services.Interpreter, services.State, services.Cache, repl.Options{
		HistoryFile: historyFile(cfg),
	})
	if err := r.Run(ctx); err != nil {
		logging.Error("REPL", err, "REPL stopped")
		return err
	}
	return nil
}

func historyFile(cfg *Config) string {
	if cfg.HistoryFile != "" {
		return cfg.HistoryFile
	}
	dir, err := config.GetUserConfigDir()
	if err != nil {
		logging.Warn("REPL", "No history file: %v", err)
		return ""
	}
	return filepath.Join(dir, historyFileName)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Info("TUI-Lifecycle", "Starting TUI mode...")

	dark := lipgloss.HasDarkBackground()
	if set, ok := darkModeOverride(cfg); ok {
		dark = set
	}
	design.Initialize(dark)

	// Switch logging to channel-based system for TUI integration
	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer func() {
		logging.CloseTUIChannel()
		// Shutdown errors after the UI is gone go to stderr.
		logging.InitForCLI(logLevel, os.Stderr)
	}()

	feedback := cfg.Courtside.Terminal.FeedbackDuration
	p := controller.NewProgram(model.TUIConfig{
		State:            services.State,
		Layout:           services.Layout,
		Interpreter:      services.Interpreter,
		Data:             services.Cache,
		FeedbackDuration: feedback,
		DebugMode:        cfg.Debug,
		LogChannel:       logChan,
	})

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

func darkModeOverride(cfg *Config) (dark, ok bool) {
	if cfg.Courtside == nil {
		return false, false
	}
	return cfg.Courtside.DarkMode()
}
