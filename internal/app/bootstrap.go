package app

import (
	"context"
	"courtside/pkg/logging"
	"fmt"
	"os"
	"time"
)

// shutdownTimeout bounds the final state flush.
const shutdownTimeout = 5 * time.Second

// Application is the main application structure that bootstraps and runs courtside
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Replaced by the channel logger in TUI mode.
	logging.InitForCLI(appLogLevel, os.Stderr)

	courtsideCfg, err := LoadCourtsideConfig(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load courtside configuration")
		return nil, fmt.Errorf("failed to load courtside configuration: %w", err)
	}
	if cfg.ConfigPath != "" {
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.Courtside = &courtsideCfg

	services, err := InitializeServices(context.Background(), courtsideCfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services exposes the wired services, mainly for one-shot commands.
func (a *Application) Services() *Services {
	return a.services
}

// Run executes the application in the appropriate mode and saves the
// terminal state on the way out.
func (a *Application) Run(ctx context.Context) error {
	var runErr error
	if a.config.NoTUI {
		runErr = runREPLMode(ctx, a.config, a.services)
	} else {
		runErr = runTUIMode(ctx, a.config, a.services)
	}

	if err := a.Close(); err != nil {
		logging.Error("Bootstrap", err, "Shutdown incomplete")
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}

// Close flushes pending state and releases the store.
func (a *Application) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.services.Close(ctx)
}
