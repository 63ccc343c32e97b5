package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/driver/postgres"
	"cognito-auth-service/app/utils/logger"
)

func TestDatabaseIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result, "Query result should be 1")
}

func TestAuditRepositoryIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	// The migration tool owns the schema in deployments; tests bootstrap it
	// directly so they run against a blank database.
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS auth_events (
			id UUID PRIMARY KEY,
			operation VARCHAR(64) NOT NULL,
			email VARCHAR(320) NOT NULL DEFAULT '',
			outcome VARCHAR(16) NOT NULL,
			error_kind VARCHAR(64) NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	require.NoError(t, err, "Should ensure auth_events table")

	t.Cleanup(func() {
		_ = CleanupTestData(context.Background())
	})

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	auditRepo := postgres.NewAuditRepository(pool, testLogger)

	t.Run("record and list auth events", func(t *testing.T) {
		success := domain.NewAuthEvent("signup", "testuser1@example.com", domain.OutcomeSuccess, "")
		failure := domain.NewAuthEvent("signin", "testuser1@example.com", domain.OutcomeFailure, domain.KindInvalidCredentials)

		require.NoError(t, auditRepo.RecordEvent(ctx, success), "Should record success event")
		require.NoError(t, auditRepo.RecordEvent(ctx, failure), "Should record failure event")

		events, err := auditRepo.RecentEvents(ctx, 10)
		require.NoError(t, err, "Should list recent events")
		require.NotEmpty(t, events, "Should return recorded events")

		byID := make(map[string]*domain.AuthEvent)
		for _, event := range events {
			byID[event.ID.String()] = event
		}

		recorded, ok := byID[failure.ID.String()]
		require.True(t, ok, "Failure event should be listed")
		assert.Equal(t, "signin", recorded.Operation)
		assert.Equal(t, domain.OutcomeFailure, recorded.Outcome)
		assert.Equal(t, string(domain.KindInvalidCredentials), recorded.ErrorKind)
		assert.Equal(t, "t********@example.com", recorded.Email, "Email should be stored masked")

		recordedSuccess, ok := byID[success.ID.String()]
		require.True(t, ok, "Success event should be listed")
		assert.Equal(t, domain.OutcomeSuccess, recordedSuccess.Outcome)
		assert.Empty(t, recordedSuccess.ErrorKind)
	})

	t.Run("limit caps the page size", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			event := domain.NewAuthEvent("resend_confirmation_code", "testuser2@example.com", domain.OutcomeSuccess, "")
			require.NoError(t, auditRepo.RecordEvent(ctx, event))
		}

		events, err := auditRepo.RecentEvents(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})
}
