package config

import (
	"os"
	"strconv"

	"vinoteka/internal/errors"
)

// DefaultFoundationYear is the year the winery was founded; the page shows
// the age derived from it.
const DefaultFoundationYear = 1920

// Config represents the complete generator configuration. Values come from
// environment variables with built-in defaults; CLI flags override both in
// the entrypoint.
type Config struct {
	ExcelFile      string
	Template       string
	HTMLOutput     string
	JSONOutput     string
	SaveJSON       bool
	Serve          bool
	ListenAddr     string
	FoundationYear int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		ExcelFile:      getEnvOrDefault("EXCEL_FILE", "wine3.xlsx"),
		Template:       getEnvOrDefault("TEMPLATE_FILE", "template.html"),
		HTMLOutput:     getEnvOrDefault("HTML_OUTPUT", "index.html"),
		JSONOutput:     getEnvOrDefault("JSON_OUTPUT", "wine_data.json"),
		SaveJSON:       getEnvBoolOrDefault("SAVE_JSON", false),
		Serve:          getEnvBoolOrDefault("SERVE", false),
		ListenAddr:     getEnvOrDefault("LISTEN_ADDR", "127.0.0.1:8000"),
		FoundationYear: getEnvIntOrDefault("FOUNDATION_YEAR", DefaultFoundationYear),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Validate checks the configuration after flag overrides have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if config.ExcelFile == "" {
		return errors.ConfigInvalid("excel file path is required")
	}
	if config.Template == "" {
		return errors.ConfigInvalid("template path is required")
	}
	if config.HTMLOutput == "" {
		return errors.ConfigInvalid("HTML output path is required")
	}
	if config.SaveJSON && config.JSONOutput == "" {
		return errors.ConfigInvalid("JSON output path is required when JSON export is on")
	}
	if config.Serve && config.ListenAddr == "" {
		return errors.ConfigInvalid("listen address is required when serving")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
