package config

import (
	"courtside/pkg/logging"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/courtside"
	projectConfigDir = ".courtside"
	configFileName   = "config.yaml"
)

// LoadConfig loads the courtside configuration by layering default, user, and project settings.
func LoadConfig() (CourtsideConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return CourtsideConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return CourtsideConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := config.Validate(); err != nil {
		return CourtsideConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath layers a single file over the defaults, skipping the
// user and project files. The file must exist.
func LoadConfigFromPath(path string) (CourtsideConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return CourtsideConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return CourtsideConfig{}, err
	}
	return config, nil
}

func overlayIfExists(base CourtsideConfig, path string) (CourtsideConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Loaded %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a CourtsideConfig from a YAML file, expanding
// environment references first.
func loadConfigFromFile(filePath string) (CourtsideConfig, error) {
	var config CourtsideConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CourtsideConfig{}, err
	}
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), &config); err != nil {
		return CourtsideConfig{}, err
	}
	return config, nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// expandEnv replaces ${VAR} and ${VAR:-default}. Unset variables without a
// default expand to the empty string.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		if v, ok := osLookupEnv(m[1]); ok && v != "" {
			return v
		}
		return m[3]
	})
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay CourtsideConfig) CourtsideConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Token != "" {
		merged.API.Token = overlay.API.Token
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}
	if overlay.API.RetryMax != 0 {
		merged.API.RetryMax = overlay.API.RetryMax
	}
	if overlay.API.CacheTTL != 0 {
		merged.API.CacheTTL = overlay.API.CacheTTL
	}

	if overlay.Store.Backend != "" {
		merged.Store.Backend = overlay.Store.Backend
	}
	if overlay.Store.Path != "" {
		merged.Store.Path = overlay.Store.Path
	}
	if overlay.Store.Debounce != nil {
		d := *overlay.Store.Debounce
		merged.Store.Debounce = &d
	}

	t := overlay.Terminal
	if t.ResizeStep != 0 {
		merged.Terminal.ResizeStep = t.ResizeStep
	}
	if t.FeedbackDuration != 0 {
		merged.Terminal.FeedbackDuration = t.FeedbackDuration
	}
	if t.DefaultPreset != "" {
		merged.Terminal.DefaultPreset = t.DefaultPreset
	}
	if t.DefaultStatWindow != "" {
		merged.Terminal.DefaultStatWindow = t.DefaultStatWindow
	}
	if t.LeftSize != 0 {
		merged.Terminal.LeftSize = t.LeftSize
	}
	if t.RightSize != 0 {
		merged.Terminal.RightSize = t.RightSize
	}
	if t.CenterPanels != nil {
		merged.Terminal.CenterPanels = append([]string(nil), t.CenterPanels...)
	}

	if overlay.UI.DarkMode != nil {
		v := *overlay.UI.DarkMode
		merged.UI.DarkMode = &v
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// StorePath resolves the store location, defaulting to the user config
// directory.
func (c CourtsideConfig) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	if c.Store.Backend == StoreBackendSQLite {
		return filepath.Join(dir, "state.db"), nil
	}
	return filepath.Join(dir, "state"), nil
}
