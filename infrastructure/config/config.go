// Package config loads service configuration from the environment into an
// explicit struct that is passed through the container; nothing reads the
// environment after startup.
package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion        string
	DynamoDBTable    string
	DynamoDBEndpoint string // optional override for local DynamoDB
	EventBusName     string // empty disables event publishing

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:    getEnv("SERVER_ADDRESS", ":8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		DynamoDBTable:    getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "stocks")),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		EventBusName:     getEnv("EVENT_BUS_NAME", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DynamoDBTable == "" {
		return fmt.Errorf("TABLE_NAME is required")
	}
	if c.AWSRegion == "" {
		return fmt.Errorf("AWS_REGION is required")
	}
	return nil
}

// IsProduction checks if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
