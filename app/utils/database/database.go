package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Pool sizing for the migration tool. The audit trail uses pgx at runtime;
// this database/sql connection exists for schema management only.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	connTimeout     = 10 * time.Second
)

// Connection wraps a database/sql connection to PostgreSQL
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens a connection using a postgres:// URL
func NewConnection(databaseURL string, logger *slog.Logger) (*Connection, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.With("component", "database").Info("database connection established")

	return &Connection{
		db:     db,
		logger: logger.With("component", "database"),
	}, nil
}

// DB returns the underlying sql.DB
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.db == nil {
		return nil
	}
	c.logger.Info("database connection closed")
	return c.db.Close()
}
