package config

import (
	"time"
)

// CourtsideConfig is the top-level configuration structure for courtside.
type CourtsideConfig struct {
	API      APIConfig      `yaml:"api"`
	Store    StoreConfig    `yaml:"store"`
	Terminal TerminalConfig `yaml:"terminal"`
	UI       UIConfig       `yaml:"ui"`
}

// APIConfig points the client at the fantasy backend.
type APIConfig struct {
	BaseURL  string        `yaml:"baseURL,omitempty"`  // e.g. "https://fantasy.example.com/api"
	Token    string        `yaml:"token,omitempty"`    // Bearer token, usually "${COURTSIDE_TOKEN}"
	Timeout  time.Duration `yaml:"timeout,omitempty"`  // Per-request timeout
	RetryMax int           `yaml:"retryMax,omitempty"` // Retries on connection errors and 5xx
	CacheTTL time.Duration `yaml:"cacheTTL,omitempty"` // How long responses stay fresh
}

// Store backends.
const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
	StoreBackendMemory = "memory"
)

// StoreConfig selects where the terminal state is persisted.
type StoreConfig struct {
	Backend string `yaml:"backend,omitempty"` // "file", "sqlite" or "memory"
	// Path is a directory for the file backend and a database file for
	// sqlite. Empty means a location under the user config directory.
	Path string `yaml:"path,omitempty"`
	// Debounce delays writes so bursts of changes coalesce. Zero writes
	// synchronously.
	Debounce *time.Duration `yaml:"debounce,omitempty"`
}

// TerminalConfig sets the terminal page defaults used on first start and
// whenever a persisted value cannot be restored.
type TerminalConfig struct {
	ResizeStep        int           `yaml:"resizeStep,omitempty"`
	FeedbackDuration  time.Duration `yaml:"feedbackDuration,omitempty"`
	DefaultPreset     string        `yaml:"defaultPreset,omitempty"`
	DefaultStatWindow string        `yaml:"defaultStatWindow,omitempty"`
	LeftSize          int           `yaml:"leftSize,omitempty"`
	RightSize         int           `yaml:"rightSize,omitempty"`
	CenterPanels      []string      `yaml:"centerPanels,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DarkMode *bool `yaml:"darkMode,omitempty"` // nil follows the terminal background
}
