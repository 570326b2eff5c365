package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Listing  ListingConfig
	Import   ImportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port      int
	WebAppURI string
}

// ListingConfig holds pagination settings for policy listings
type ListingConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// ImportConfig holds limits for bulk policy imports
type ImportConfig struct {
	MaxRows int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	cfg.Server.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Listing configuration
	defaultPageSize := getEnvWithDefault("LISTING_DEFAULT_PAGE_SIZE", "20")
	cfg.Listing.DefaultPageSize, err = strconv.Atoi(defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LISTING_DEFAULT_PAGE_SIZE: %w", err)
	}
	maxPageSize := getEnvWithDefault("LISTING_MAX_PAGE_SIZE", "100")
	cfg.Listing.MaxPageSize, err = strconv.Atoi(maxPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to parse LISTING_MAX_PAGE_SIZE: %w", err)
	}

	// Import configuration
	maxImportRows := getEnvWithDefault("IMPORT_MAX_ROWS", "5000")
	cfg.Import.MaxRows, err = strconv.Atoi(maxImportRows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse IMPORT_MAX_ROWS: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
