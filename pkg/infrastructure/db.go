package infrastructure

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ErrNoDatabase is returned when no DSN is configured.
var ErrNoDatabase = errors.New("database url not configured")

// NewJobsPool connects to the print archive database.
func NewJobsPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrNoDatabase
	}
	return pgxpool.Connect(ctx, dsn)
}
