package config

import (
	"courtside/internal/panels"
	"courtside/internal/terminal"
	"errors"
	"fmt"
	"net/url"
)

// Validate reports every invalid setting at once.
func (c CourtsideConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.API.BaseURL != "" {
		if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			add("api.baseURL %q is not an absolute URL", c.API.BaseURL)
		}
	}
	if c.API.Timeout < 0 {
		add("api.timeout must not be negative")
	}
	if c.API.RetryMax < 0 {
		add("api.retryMax must not be negative")
	}
	if c.API.CacheTTL < 0 {
		add("api.cacheTTL must not be negative")
	}

	switch c.Store.Backend {
	case StoreBackendFile, StoreBackendSQLite, StoreBackendMemory:
	default:
		add("store.backend %q is not one of file, sqlite, memory", c.Store.Backend)
	}
	if c.Store.Debounce != nil && *c.Store.Debounce < 0 {
		add("store.debounce must not be negative")
	}

	t := c.Terminal
	if t.ResizeStep < 1 || t.ResizeStep > terminal.MaxLeftSize-terminal.MinLeftSize {
		add("terminal.resizeStep %d is out of range", t.ResizeStep)
	}
	if t.FeedbackDuration <= 0 {
		add("terminal.feedbackDuration must be positive")
	}
	if !terminal.LayoutPreset(t.DefaultPreset).Valid() {
		add("terminal.defaultPreset %q is not a layout preset", t.DefaultPreset)
	}
	if !terminal.StatWindow(t.DefaultStatWindow).Valid() {
		add("terminal.defaultStatWindow %q is not a stat window", t.DefaultStatWindow)
	}
	if t.LeftSize < terminal.MinLeftSize || t.LeftSize > terminal.MaxLeftSize {
		add("terminal.leftSize %d must be within %d-%d", t.LeftSize, terminal.MinLeftSize, terminal.MaxLeftSize)
	}
	if t.RightSize < terminal.MinRightSize || t.RightSize > terminal.MaxRightSize {
		add("terminal.rightSize %d must be within %d-%d", t.RightSize, terminal.MinRightSize, terminal.MaxRightSize)
	}
	for _, id := range t.CenterPanels {
		if _, ok := panels.Get(id); !ok {
			add("terminal.centerPanels: unknown panel %q", id)
		}
	}

	return errors.Join(errs...)
}
