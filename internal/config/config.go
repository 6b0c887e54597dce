package config

import (
	"os"
	"strconv"

	"cognicare/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Export      ExportConfig
	Delivery    DeliveryConfig
	Aggregation AggregationConfig
}

// DatabaseConfig holds session store connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ExportConfig holds document export settings
type ExportConfig struct {
	Dir          string
	PrintCommand string
}

// DeliveryConfig holds delivery channel settings. An empty endpoint means no
// channel is configured; dispatch then reports the channel as unavailable
// instead of attempting a call.
type DeliveryConfig struct {
	Endpoint string
	APIKey   string
}

// AggregationConfig holds dashboard aggregation settings
type AggregationConfig struct {
	MaxConcurrentFetches int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Export: ExportConfig{
			Dir:          getEnvOrDefault("EXPORT_DIR", "exports"),
			PrintCommand: getEnvOrDefault("PRINT_COMMAND", "lp"),
		},
		Delivery: DeliveryConfig{
			Endpoint: getEnvOrDefault("DELIVERY_ENDPOINT", ""),
			APIKey:   getEnvOrDefault("DELIVERY_API_KEY", ""),
		},
		Aggregation: AggregationConfig{
			MaxConcurrentFetches: getEnvIntOrDefault("MAX_CONCURRENT_FETCHES", 8),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Export.Dir == "" {
		return errors.ConfigInvalid("export directory is required")
	}
	if config.Aggregation.MaxConcurrentFetches < 1 {
		return errors.ConfigInvalid("max concurrent fetches must be at least 1")
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
