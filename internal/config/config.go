package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	appName    = "kanafont"
	configFile = "config.json"
)

// Backend names for the preferences store.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the application configuration.
type Config struct {
	Backend string `json:"backend,omitempty"`
	Mute    bool   `json:"mute,omitempty"`
}

// BackendOrDefault returns the configured backend, json when unset.
func (c *Config) BackendOrDefault() string {
	if c.Backend == "" {
		return BackendJSON
	}
	return c.Backend
}

// DataDir returns the directory for config, preferences and logs:
// $XDG_CONFIG_HOME/kanafont, falling back to ~/.config/kanafont.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Load reads the config from disk
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(dir string, cfg *Config) error {
	configPath := filepath.Join(dir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
