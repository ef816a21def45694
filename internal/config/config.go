package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default search endpoint for the FII category on Status Invest.
const defaultSearchURL = "https://statusinvest.com.br/category/advancedsearchresult"

// Config holds application configuration
type Config struct {
	Port         int
	DevMode      bool
	LogLevel     string
	DatabasePath string
	CacheDir     string

	// Acquisition
	SearchURL     string
	CacheTTLHours int

	// Universe
	RefreshIntervalHours int
	UniverseSize         int

	// Derivation
	RiskFreeRate float64 // percent, e.g. 4.5
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnvAsInt("PORT", 8001),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabasePath:         getEnv("DATABASE_PATH", "./data/fiiradar.db"),
		CacheDir:             getEnv("CACHE_DIR", "./cache"),
		SearchURL:            getEnv("STATUSINVEST_URL", defaultSearchURL),
		CacheTTLHours:        getEnvAsInt("CACHE_TTL_HOURS", 24),
		RefreshIntervalHours: getEnvAsInt("REFRESH_INTERVAL_HOURS", 4),
		UniverseSize:         getEnvAsInt("UNIVERSE_SIZE", 150),
		RiskFreeRate:         getEnvAsFloat("RISK_FREE_RATE", 4.5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is usable
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.RefreshIntervalHours <= 0 {
		return fmt.Errorf("REFRESH_INTERVAL_HOURS must be positive, got %d", c.RefreshIntervalHours)
	}
	if c.UniverseSize <= 0 {
		return fmt.Errorf("UNIVERSE_SIZE must be positive, got %d", c.UniverseSize)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
