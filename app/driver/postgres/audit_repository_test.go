package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognito-auth-service/app/domain"
)

func createTestAuditRepository(t *testing.T) (*AuditRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := NewAuditRepository(mockDB, logger).(*AuditRepository)

	return repo, mockDB
}

func TestAuditRepository_RecordEvent(t *testing.T) {
	t.Run("inserts one row per event", func(t *testing.T) {
		repo, mockDB := createTestAuditRepository(t)
		defer mockDB.Close()

		event := domain.NewAuthEvent("signup", "a@x.com", domain.OutcomeSuccess, "")

		mockDB.ExpectExec("INSERT INTO auth_events").
			WithArgs(
				event.ID,
				event.Operation,
				event.Email,
				event.Outcome,
				event.ErrorKind,
				event.CreatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.RecordEvent(context.Background(), event)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("stores the error kind on failures", func(t *testing.T) {
		repo, mockDB := createTestAuditRepository(t)
		defer mockDB.Close()

		event := domain.NewAuthEvent("signin", "a@x.com", domain.OutcomeFailure, domain.KindInvalidCredentials)

		mockDB.ExpectExec("INSERT INTO auth_events").
			WithArgs(
				event.ID,
				event.Operation,
				event.Email,
				event.Outcome,
				string(domain.KindInvalidCredentials),
				event.CreatedAt,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.RecordEvent(context.Background(), event)

		assert.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("wraps database failures", func(t *testing.T) {
		repo, mockDB := createTestAuditRepository(t)
		defer mockDB.Close()

		event := domain.NewAuthEvent("logout", "", domain.OutcomeSuccess, "")

		mockDB.ExpectExec("INSERT INTO auth_events").
			WithArgs(
				event.ID,
				event.Operation,
				event.Email,
				event.Outcome,
				event.ErrorKind,
				event.CreatedAt,
			).
			WillReturnError(errors.New("connection refused"))

		err := repo.RecordEvent(context.Background(), event)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record auth event")
	})
}

func TestAuditRepository_RecentEvents(t *testing.T) {
	columns := []string{"id", "operation", "email", "outcome", "error_kind", "created_at"}

	t.Run("returns scanned events", func(t *testing.T) {
		repo, mockDB := createTestAuditRepository(t)
		defer mockDB.Close()

		now := time.Now().UTC()
		firstID := uuid.New()
		secondID := uuid.New()

		mockDB.ExpectQuery("SELECT(.+)FROM auth_events").
			WithArgs(2).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(firstID, "signin", "a***@x.com", domain.OutcomeFailure, string(domain.KindInvalidCredentials), now).
				AddRow(secondID, "signup", "a***@x.com", domain.OutcomeSuccess, "", now.Add(-time.Minute)))

		events, err := repo.RecentEvents(context.Background(), 2)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, firstID, events[0].ID)
		assert.Equal(t, "signin", events[0].Operation)
		assert.Equal(t, string(domain.KindInvalidCredentials), events[0].ErrorKind)
		assert.Equal(t, "signup", events[1].Operation)
		assert.Empty(t, events[1].ErrorKind)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		repo, mockDB := createTestAuditRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM auth_events").
			WithArgs(50).
			WillReturnRows(pgxmock.NewRows(columns))

		events, err := repo.RecentEvents(context.Background(), 0)

		require.NoError(t, err)
		assert.Empty(t, events)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("wraps query failures", func(t *testing.T) {
		repo, mockDB := createTestAuditRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM auth_events").
			WithArgs(10).
			WillReturnError(errors.New("relation does not exist"))

		events, err := repo.RecentEvents(context.Background(), 10)

		require.Error(t, err)
		assert.Nil(t, events)
		assert.Contains(t, err.Error(), "failed to query auth events")
	})
}
