package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Flat-file store configuration
	Store StoreConfig

	// Analytics configuration
	Analytics AnalyticsConfig

	// ISA responder configuration
	ISA ISAConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StoreConfig holds flat-file store settings
type StoreConfig struct {
	DataDir string
}

// AnalyticsConfig holds analytics collection settings
type AnalyticsConfig struct {
	MaxEvents int
}

// ISAConfig holds inside-sales-agent responder settings.
// An empty APIKey switches the responder into simulated mode.
type ISAConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		Analytics: AnalyticsConfig{
			MaxEvents: getIntEnv("ANALYTICS_MAX_EVENTS", 1000),
		},
		ISA: ISAConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("ISA_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("ISA_MODEL", "gpt-4o-mini"),
			Timeout: getDurationEnv("ISA_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Analytics.MaxEvents < 1 {
		return fmt.Errorf("ANALYTICS_MAX_EVENTS must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
