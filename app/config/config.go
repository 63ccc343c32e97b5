package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cognito-auth-service/app/domain"
)

// Config holds all configuration for the auth service. Cognito identifiers
// are opaque strings resolved here and fixed for the process lifetime.
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database (audit trail)
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Cognito
	AWSRegion          string `env:"AWS_REGION" required:"true"`
	CognitoUserPoolID  string `env:"AWS_COGNITO_USER_POOL_ID" required:"true"`
	CognitoAppClientID string `env:"AWS_COGNITO_APP_CLIENT_ID" required:"true"`
	CognitoEndpoint    string `env:"AWS_COGNITO_ENDPOINT"`

	// Signup roles; defaults to the built-in set, optionally overridden by
	// a YAML file
	RolesFile     string `env:"ROLES_FILE"`
	AcceptedRoles []string
}

// rolesFile is the YAML shape of an accepted-roles override file
type rolesFile struct {
	Roles []string `yaml:"roles"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Cognito configuration
	config.AWSRegion = os.Getenv("AWS_REGION")
	if config.AWSRegion == "" {
		return nil, fmt.Errorf("AWS_REGION is required")
	}

	config.CognitoUserPoolID = os.Getenv("AWS_COGNITO_USER_POOL_ID")
	if config.CognitoUserPoolID == "" {
		return nil, fmt.Errorf("AWS_COGNITO_USER_POOL_ID is required")
	}

	config.CognitoAppClientID = os.Getenv("AWS_COGNITO_APP_CLIENT_ID")
	if config.CognitoAppClientID == "" {
		return nil, fmt.Errorf("AWS_COGNITO_APP_CLIENT_ID is required")
	}

	config.CognitoEndpoint = os.Getenv("AWS_COGNITO_ENDPOINT")

	// Accepted signup roles
	config.RolesFile = os.Getenv("ROLES_FILE")
	roles, err := loadRoles(config.RolesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles file: %w", err)
	}
	config.AcceptedRoles = roles

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if len(c.AcceptedRoles) == 0 {
		return fmt.Errorf("accepted role set must not be empty")
	}
	for _, role := range c.AcceptedRoles {
		if strings.TrimSpace(role) == "" {
			return fmt.Errorf("accepted role set contains an empty role")
		}
	}

	return nil
}

// loadRoles reads the accepted-roles override file, falling back to the
// built-in role set when no file is configured
func loadRoles(path string) ([]string, error) {
	if path == "" {
		return domain.DefaultRoles(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file rolesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid roles file %s: %w", path, err)
	}
	if len(file.Roles) == 0 {
		return nil, fmt.Errorf("roles file %s defines no roles", path)
	}

	return file.Roles, nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
