package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds user settings. Every field can be overridden from the
// environment with the name in its envconfig tag.
type Config struct {
	// Service
	BaseURL        string        `yaml:"base_url" envconfig:"ATIVOS_BASE_URL" validate:"required,url"`
	RequestTimeout time.Duration `yaml:"request_timeout" envconfig:"ATIVOS_REQUEST_TIMEOUT" validate:"min=0"`

	DefaultAction string `yaml:"default_action" envconfig:"ATIVOS_DEFAULT_ACTION" validate:"oneof=dashboard list"`
	Editor        string `yaml:"editor" envconfig:"ATIVOS_EDITOR"`
	MaxWorkers    int    `yaml:"max_workers" envconfig:"ATIVOS_MAX_WORKERS" validate:"min=1,max=64"`

	// UI Settings
	ColorTheme        string `yaml:"color_theme" envconfig:"ATIVOS_COLOR_THEME" validate:"oneof=auto dark light"`
	NotificationTTLMS int    `yaml:"notification_ttl_ms" envconfig:"ATIVOS_NOTIFICATION_TTL_MS" validate:"min=0"`

	// Import
	WatchDebounceMS int `yaml:"watch_debounce_ms" envconfig:"ATIVOS_WATCH_DEBOUNCE_MS" validate:"min=0"`

	// Chart
	ChartOutput string `yaml:"chart_output" envconfig:"ATIVOS_CHART_OUTPUT"`
	ChartViewer string `yaml:"chart_viewer" envconfig:"ATIVOS_CHART_VIEWER"`

	// Logging
	LogLevel string `yaml:"log_level" envconfig:"ATIVOS_LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile  string `yaml:"log_file" envconfig:"ATIVOS_LOG_FILE"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "http://localhost:3000",
		RequestTimeout:    0,
		DefaultAction:     "dashboard",
		Editor:            "",
		MaxWorkers:        4,
		ColorTheme:        "auto",
		NotificationTTLMS: 3000,
		WatchDebounceMS:   500,
		ChartOutput:       "",
		ChartViewer:       "",
		LogLevel:          "info",
		LogFile:           "",
	}
}

// Load reads configuration from the specified file path, then applies
// environment overrides and validates the result
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A missing file leaves the defaults in place
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Apply defaults for essential values if missing
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.DefaultAction == "" {
		cfg.DefaultAction = "dashboard"
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NotificationTTL returns how long dashboard notifications stay visible
func (c *Config) NotificationTTL() time.Duration {
	return time.Duration(c.NotificationTTLMS) * time.Millisecond
}

// WatchDebounce returns the quiet period before a watched file is re-imported
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}
