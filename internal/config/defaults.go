package config

import (
	"courtside/internal/api"
	"courtside/internal/command"
	"courtside/internal/layout"
	"courtside/internal/persist"
	"courtside/internal/terminal"
	"time"
)

// Default values that are not owned by another package.
const (
	DefaultBaseURL  = "http://localhost:8080/api"
	DefaultTimeout  = 10 * time.Second
	DefaultRetryMax = 3
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() CourtsideConfig {
	debounce := persist.DefaultDebounce
	l := terminal.DefaultLayout()
	return CourtsideConfig{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Timeout:  DefaultTimeout,
			RetryMax: DefaultRetryMax,
			CacheTTL: api.DefaultCacheTTL,
		},
		Store: StoreConfig{
			Backend:  StoreBackendFile,
			Debounce: &debounce,
		},
		Terminal: TerminalConfig{
			ResizeStep:        layout.DefaultStep,
			FeedbackDuration:  command.FeedbackDuration,
			DefaultPreset:     string(l.Preset),
			DefaultStatWindow: string(terminal.WindowSeason),
			LeftSize:          l.LeftSize,
			RightSize:         l.RightSize,
			CenterPanels:      l.CenterPanels,
		},
	}
}

// TerminalDefaults converts the terminal section into the defaults the
// state container starts from. Call Validate first; invalid values fall
// back to the built-in defaults.
func (c CourtsideConfig) TerminalDefaults() (terminal.Layout, terminal.StatWindow) {
	l := terminal.DefaultLayout()
	if p := terminal.LayoutPreset(c.Terminal.DefaultPreset); p.Valid() {
		l.Preset = p
		l.LeftCollapsed, l.RightCollapsed = p.Collapsed()
	}
	if c.Terminal.LeftSize != 0 {
		l.LeftSize = c.Terminal.LeftSize
	}
	if c.Terminal.RightSize != 0 {
		l.RightSize = c.Terminal.RightSize
	}
	if len(c.Terminal.CenterPanels) > 0 {
		l.CenterPanels = append([]string(nil), c.Terminal.CenterPanels...)
	}

	w := terminal.StatWindow(c.Terminal.DefaultStatWindow)
	if !w.Valid() {
		w = terminal.WindowSeason
	}
	return l, w
}

// StoreDebounce returns the configured write debounce.
func (c CourtsideConfig) StoreDebounce() time.Duration {
	if c.Store.Debounce == nil {
		return persist.DefaultDebounce
	}
	return *c.Store.Debounce
}

// DarkMode reports the configured theme and whether it was set at all.
func (c CourtsideConfig) DarkMode() (dark, set bool) {
	if c.UI.DarkMode == nil {
		return false, false
	}
	return *c.UI.DarkMode, true
}
