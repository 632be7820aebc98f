package app

import (
	"courtside/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered lookup with a single file when set.
	ConfigPath string

	// HistoryFile overrides where the REPL keeps its line history.
	HistoryFile string

	// Courtside is filled in by NewApplication once the config is loaded.
	Courtside *config.CourtsideConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// LoadCourtsideConfig loads the configuration named by cfg, falling back to
// the layered user and project files.
func LoadCourtsideConfig(cfg *Config) (config.CourtsideConfig, error) {
	if cfg.ConfigPath != "" {
		return config.LoadConfigFromPath(cfg.ConfigPath)
	}
	return config.LoadConfig()
}
