// Package common provides shared utilities for Balsheet
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Balsheet
type Config struct {
	Environment string        `toml:"environment"`
	OutputDir   string        `toml:"output_dir"`
	Clients     ClientsConfig `toml:"clients"`
	Logging     LoggingConfig `toml:"logging"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	FMP    FMPConfig    `toml:"fmp"`
	Gemini GeminiConfig `toml:"gemini"`
}

// FMPConfig holds Financial Modeling Prep API configuration
type FMPConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	Period    string `toml:"period"` // "annual" or "quarter"
	Limit     int    `toml:"limit"`  // number of periods to fetch
}

// GetTimeout parses and returns the timeout duration
func (c *FMPConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		OutputDir:   "reports",
		Clients: ClientsConfig{
			FMP: FMPConfig{
				BaseURL:   "https://financialmodelingprep.com/api/v3",
				RateLimit: 5,
				Timeout:   "30s",
				Period:    "annual",
				Limit:     5,
			},
			Gemini: GeminiConfig{
				Model: "gemini-2.0-flash",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// A .env file in the working directory, if present, is loaded first so
// FMP_API_KEY and GEMINI_API_KEY can live outside the TOML file.
func LoadConfig(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("BALSHEET_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("BALSHEET_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if dir := os.Getenv("BALSHEET_OUTPUT_DIR"); dir != "" {
		config.OutputDir = dir
	}

	if key := os.Getenv("FMP_API_KEY"); key != "" {
		config.Clients.FMP.APIKey = key
	}

	if url := os.Getenv("FMP_BASE_URL"); url != "" {
		config.Clients.FMP.BaseURL = url
	}

	if limit := os.Getenv("BALSHEET_PERIOD_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			config.Clients.FMP.Limit = n
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.Clients.Gemini.APIKey = key
	}

	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		config.Clients.Gemini.Model = model
	}
}

// ValidateRequired returns the list of required settings that are missing.
func (c *Config) ValidateRequired(skipAI bool) []string {
	var missing []string
	if c.Clients.FMP.APIKey == "" {
		missing = append(missing, "clients.fmp.api_key (FMP_API_KEY)")
	}
	if !skipAI && c.Clients.Gemini.APIKey == "" {
		missing = append(missing, "clients.gemini.api_key (GEMINI_API_KEY)")
	}
	return missing
}
