package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Seed source names
const (
	SeedSourceHTTP        = "http"
	SeedSourceGoogleTasks = "googletasks"
	SeedSourceNone        = "none"
	SeedSourceStatic      = "static"
)

// DefaultSeedURL is the public todo feed used to populate an empty board
const DefaultSeedURL = "https://dummyjson.com/todos"

// DefaultSeedLimit caps how many seed descriptions become tasks
const DefaultSeedLimit = 10

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Seed        SeedConfig    `yaml:"seed"`
	Log         LogConfig     `yaml:"log"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// StorageConfig locates the sqlite key-value database
type StorageConfig struct {
	// Path to the database file; empty means ~/.tareas/tareas.db
	Path string `yaml:"path"`
}

// SeedConfig controls how an empty board is populated on first load
type SeedConfig struct {
	Source      string            `yaml:"source"` // http, googletasks, static or none
	URL         string            `yaml:"url"`
	Items       []string          `yaml:"items"` // descriptions for the static source
	Limit       int               `yaml:"limit"`
	Timeout     time.Duration     `yaml:"timeout"`
	GoogleTasks GoogleTasksConfig `yaml:"google_tasks"`
}

// GoogleTasksConfig points at the OAuth files and the list to seed from
type GoogleTasksConfig struct {
	// ListID is the Google Tasks list; empty means "@default"
	ListID string `yaml:"list_id"`
	// CredentialsDir holds oauth_client.json and token.json; empty means the config dir
	CredentialsDir string `yaml:"credentials_dir"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // empty means ~/.tareas/logs
}

// loadThemeFile loads and merges theme from TAREAS_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TAREAS_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with TAREAS_* environment variables
func applyEnv(config *Config) {
	if v := os.Getenv("TAREAS_DB"); v != "" {
		config.Storage.Path = v
	}
	if v := os.Getenv("TAREAS_SEED_SOURCE"); v != "" {
		config.Seed.Source = v
	}
	if v := os.Getenv("TAREAS_SEED_URL"); v != "" {
		config.Seed.URL = v
	}
	if v := os.Getenv("TAREAS_SEED_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			config.Seed.Limit = parsed
		}
	}
	if v := os.Getenv("TAREAS_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
}

// Default returns a fully populated default configuration
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := GetConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	loadThemeFile(config)
	applyEnv(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Dir returns the tareas config directory
func Dir() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tareas"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tareas"), nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Seed.Source == "" {
		c.Seed.Source = SeedSourceHTTP
	}
	if c.Seed.URL == "" {
		c.Seed.URL = DefaultSeedURL
	}
	if c.Seed.Limit <= 0 {
		c.Seed.Limit = DefaultSeedLimit
	}
	if c.Seed.Timeout <= 0 {
		c.Seed.Timeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
