package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

// PrintsRepo archives print jobs in Postgres. A nil pool turns Save into a
// no-op so the service runs without a database.
type PrintsRepo struct {
	pool *pgxpool.Pool
}

func NewPrintsRepo(pool *pgxpool.Pool) *PrintsRepo {
	return &PrintsRepo{pool: pool}
}

const upsertPrintJob = `INSERT INTO print_jobs (id, session_id, title, status, attempts, size_bytes, metadata, created_at, updated_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, attempts = EXCLUDED.attempts, size_bytes = EXCLUDED.size_bytes, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at`

func (r *PrintsRepo) Save(ctx context.Context, j *domain.PrintJob) error {
	if r.pool == nil {
		return nil
	}

	metaB, err := json.Marshal(j.Metadata)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, upsertPrintJob,
		j.ID, j.SessionID, j.Title, j.Status, j.Attempts, j.SizeBytes, metaB, j.CreatedAt, j.UpdatedAt)
	return err
}

// Recent returns the latest print jobs, newest first.
func (r *PrintsRepo) Recent(ctx context.Context, limit int) ([]domain.PrintJob, error) {
	if r.pool == nil {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, session_id, title, status, attempts, size_bytes, metadata, created_at, updated_at
		FROM print_jobs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PrintJob
	for rows.Next() {
		var j domain.PrintJob
		var metaB []byte
		if err := rows.Scan(&j.ID, &j.SessionID, &j.Title, &j.Status, &j.Attempts, &j.SizeBytes, &metaB, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		if len(metaB) > 0 {
			if err := json.Unmarshal(metaB, &j.Metadata); err != nil {
				return nil, err
			}
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
