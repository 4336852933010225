package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"resume-builder/pkg/logger"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// All lists the migrations in the order they run.
var All = []Migration{
	{Name: "create_print_jobs", Up: createPrintJobs},
	{Name: "index_print_jobs_created_at", Up: indexPrintJobsCreatedAt},
}

// RunMigrations executes all migrations on startup. Every statement is
// idempotent, so reruns are safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	logger.Info("Starting database migrations")

	for _, m := range All {
		if err := m.Up(ctx, pool); err != nil {
			logger.Error("Migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		logger.Info("Migration completed", zap.String("name", m.Name))
	}

	logger.Info("All migrations completed successfully")
	return nil
}

func createPrintJobs(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS print_jobs (
			id         UUID PRIMARY KEY,
			session_id TEXT NOT NULL DEFAULT '',
			title      TEXT NOT NULL DEFAULT '',
			status     TEXT NOT NULL,
			attempts   INTEGER NOT NULL DEFAULT 0,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			metadata   JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func indexPrintJobsCreatedAt(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS print_jobs_created_at_idx ON print_jobs (created_at DESC);`); err != nil {
		// an index is an optimisation; a failure here should not stop startup
		logger.Warn("Error creating print_jobs index", zap.Error(err))
	}
	return nil
}
