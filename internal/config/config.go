package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/testdeck/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAPIURL    = "TESTDECK_API_URL"
	EnvPageSize  = "TESTDECK_PAGE_SIZE"
	EnvLogLevel  = "TESTDECK_LOG_LEVEL"
	EnvThemeFile = "TESTDECK_THEME_FILE"
)

// Defaults
const (
	DefaultBaseURL = "http://localhost:8080/api"
	DefaultTimeout = 10 * time.Second
	DefaultPerPage = 4
	DefaultLevel   = "info"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	API         APIConfig          `yaml:"api"`
	Pagination  PaginationConfig   `yaml:"pagination"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// APIConfig locates the test plan backend
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// PaginationConfig sizes the plan list pages
type PaginationConfig struct {
	PerPage int `yaml:"per_page"`
}

// LogConfig sets the log level (debug, info, warn, error)
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		cfg := Default()
		if err := finish(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from path; a missing file yields the defaults.
// A .env file in the working directory is read first, then environment
// overrides are applied on top of the file.
func LoadFrom(configPath string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}

	cfg.applyDefaults()
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func finish(cfg *Config) error {
	loadDotEnv()
	loadThemeFile(cfg)
	if err := cfg.applyEnv(); err != nil {
		return err
	}
	return cfg.Validate()
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// EnsureFile writes the default config when none exists yet, so there is a
// file to edit while the TUI watches it. It reports whether it wrote one.
func EnsureFile() (bool, error) {
	configPath, err := Path()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(configPath); !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := Default().Save(); err != nil {
		return false, err
	}
	return true, nil
}

// SaveTo writes the config as YAML to path
func (c *Config) SaveTo(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0o644)
}

// Validate checks values that would break the client
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api.base_url %q must be an http(s) URL", ErrInvalidConfig, c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalidConfig)
	}
	if c.Pagination.PerPage <= 0 {
		return fmt.Errorf("%w: pagination.per_page must be positive", ErrInvalidConfig)
	}
	return nil
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "testdeck", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "testdeck", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.Pagination.PerPage == 0 {
		c.Pagination.PerPage = DefaultPerPage
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets TESTDECK_* variables win over the file
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvPageSize, v)
		}
		c.Pagination.PerPage = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// loadDotEnv reads ./.env without overriding variables already set
func loadDotEnv() {
	_ = godotenv.Load()
}

// loadThemeFile merges the theme from TESTDECK_THEME_FILE over the configured one
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.Override(themeConfig.Theme)
	}
}
