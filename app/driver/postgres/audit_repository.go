package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/port"
)

// AuditRepository implements port.AuditRepository for PostgreSQL. The
// auth_events table is append-only; rows are never updated or deleted
// by the service.
type AuditRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAuditRepository creates a new PostgreSQL audit repository
func NewAuditRepository(db DatabaseIface, logger *slog.Logger) port.AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger.With("component", "audit_repository"),
	}
}

// RecordEvent appends one auth event to the trail
func (r *AuditRepository) RecordEvent(ctx context.Context, event *domain.AuthEvent) error {
	query := `
		INSERT INTO auth_events (
			id, operation, email, outcome, error_kind, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.db.Exec(ctx, query,
		event.ID,
		event.Operation,
		event.Email,
		event.Outcome,
		event.ErrorKind,
		event.CreatedAt,
	)

	if err != nil {
		r.logger.Error("failed to record auth event",
			"operation", event.Operation,
			"outcome", event.Outcome,
			"error", err)
		return fmt.Errorf("failed to record auth event: %w", err)
	}

	return nil
}

// RecentEvents returns the newest events first, capped at limit
func (r *AuditRepository) RecentEvents(ctx context.Context, limit int) ([]*domain.AuthEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			id, operation, email, outcome, error_kind, created_at
		FROM auth_events
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error("failed to query auth events", "error", err)
		return nil, fmt.Errorf("failed to query auth events: %w", err)
	}
	defer rows.Close()

	var events []*domain.AuthEvent
	for rows.Next() {
		event := &domain.AuthEvent{}
		if err := rows.Scan(
			&event.ID,
			&event.Operation,
			&event.Email,
			&event.Outcome,
			&event.ErrorKind,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan auth event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read auth events: %w", err)
	}

	return events, nil
}
