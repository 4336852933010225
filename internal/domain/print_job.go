package domain

import (
	"time"

	"github.com/google/uuid"
)

// Print job statuses.
const (
	PrintPending   = "pending"
	PrintCompleted = "completed"
	PrintFailed    = "failed"
)

// PrintJob records one attempt to print a submitted resume.
type PrintJob struct {
	ID        uuid.UUID              `json:"id"`
	SessionID string                 `json:"session_id"`
	Title     string                 `json:"title"`
	Status    string                 `json:"status"`
	Attempts  int                    `json:"attempts"`
	SizeBytes int                    `json:"size_bytes"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
