package integration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"cognito-auth-service/app/config"
	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/driver/postgres"
	"cognito-auth-service/app/utils/logger"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "auth_test_db"
	TestPostgresUser     = "auth_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestAuthServiceURL = "http://localhost:9600"
)

// TestConfig creates a configuration for integration tests. DATABASE_URL
// overrides the default local test database when set.
func TestConfig() *config.Config {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			TestPostgresUser, TestPostgresPassword, TestPostgresHost,
			TestPostgresPort, TestPostgresDB, TestPostgresSSLMode)
	}

	return &config.Config{
		// Server
		Port:     "9600",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		// Database
		DatabaseURL: databaseURL,

		// Cognito; integration tests point at a cognito-local endpoint
		AWSRegion:          "us-east-1",
		CognitoUserPoolID:  "us-east-1_testpool",
		CognitoAppClientID: "test-client-id",
		CognitoEndpoint:    "http://localhost:9229",

		AcceptedRoles: domain.DefaultRoles(),
	}
}

// TestDatabaseConnection creates a database connection for integration tests
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return db.Pool(), nil
}

// WaitForService waits for a service to be healthy
func WaitForService(ctx context.Context, healthCheckFunc func(context.Context) error, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if err := healthCheckFunc(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
			// Continue waiting
		}
	}

	return fmt.Errorf("service did not become healthy within %v", timeout)
}

// WaitForDatabase waits for the database to be ready
func WaitForDatabase(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		pool, err := TestDatabaseConnection()
		if err != nil {
			return err
		}
		defer pool.Close()

		return pool.Ping(ctx)
	}, 30*time.Second)
}

// CleanupTestData removes integration test rows from the database
func CleanupTestData(ctx context.Context) error {
	pool, err := TestDatabaseConnection()
	if err != nil {
		return err
	}
	defer pool.Close()

	cleanupQueries := []string{
		"DELETE FROM auth_events WHERE email LIKE '%@example.com'",
	}

	for _, query := range cleanupQueries {
		if _, err := pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute cleanup query: %w", err)
		}
	}

	return nil
}
