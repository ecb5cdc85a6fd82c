package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"radiopanel/internal/constants"
)

// Config holds all application configuration
type Config struct {
	Port         string
	SecretKey    string
	ConfigDir    string
	LogLevel     string
	LogFormat    string
	SiteTitle    string
	ShowDefaults ShowDefaults
}

// ShowDefaults names the show fields a form may leave blank and the values
// substituted for them. An empty value keeps the field strictly required, so
// both deployment variants are covered by one explicit setting.
type ShowDefaults struct {
	RemoteDirectory string `yaml:"remote_directory"`
	ArtworkFile     string `yaml:"artwork_file"`
}

// settingsFile mirrors the optional YAML settings file referenced by SETTINGS_FILE.
type settingsFile struct {
	SiteTitle    string       `yaml:"site_title"`
	ShowDefaults ShowDefaults `yaml:"show_defaults"`
}

// Load loads configuration from environment variables with defaults. An optional
// YAML settings file supplies the panel title and show field defaults; environment
// variables win over the file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", constants.DefaultPort),
		SecretKey: getEnv("SECRET_KEY", constants.DefaultSecretKey),
		ConfigDir: getEnv("CONFIG_DIR", constants.DefaultConfigDir),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
		SiteTitle: constants.DefaultSiteTitle,
	}

	if path := strings.TrimSpace(os.Getenv("SETTINGS_FILE")); path != "" {
		if err := cfg.applySettingsFile(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("SHOW_DEFAULT_REMOTE_DIR"); v != "" {
		cfg.ShowDefaults.RemoteDirectory = v
	}
	if v := os.Getenv("SHOW_DEFAULT_ARTWORK_FILE"); v != "" {
		cfg.ShowDefaults.ArtworkFile = v
	}

	return cfg, nil
}

func (c *Config) applySettingsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings file %s: %w", path, err)
	}

	var sf settingsFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse settings file %s: %w", path, err)
	}

	if sf.SiteTitle != "" {
		c.SiteTitle = sf.SiteTitle
	}
	if sf.ShowDefaults.RemoteDirectory != "" {
		c.ShowDefaults.RemoteDirectory = sf.ShowDefaults.RemoteDirectory
	}
	if sf.ShowDefaults.ArtworkFile != "" {
		c.ShowDefaults.ArtworkFile = sf.ShowDefaults.ArtworkFile
	}

	return nil
}

// Validate validates the configuration and returns detailed errors
func (c *Config) Validate() error {
	var errors []string

	// Validate Port
	if c.Port == "" {
		errors = append(errors, "PORT cannot be empty")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("PORT must be a valid number, got: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %d", port))
		}
	}

	// Validate ConfigDir
	if c.ConfigDir == "" {
		errors = append(errors, "CONFIG_DIR cannot be empty")
	}

	// Validate SecretKey
	if c.SecretKey == "" {
		errors = append(errors, "SECRET_KEY cannot be empty")
	}

	// Validate LogLevel
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error, got: %s", c.LogLevel))
	}

	// Validate LogFormat
	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[c.LogFormat] {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: text, json, got: %s", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// InsecureSecret reports whether the signing key is still the development default.
func (c *Config) InsecureSecret() bool {
	return c.SecretKey == constants.DefaultSecretKey
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
