package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"resume-builder/internal/domain"
)

func TestPrintsRepo_NilPoolIsNoop(t *testing.T) {
	r := NewPrintsRepo(nil)
	ctx := context.Background()

	assert.NoError(t, r.Save(ctx, &domain.PrintJob{ID: uuid.New(), Status: domain.PrintCompleted}))

	jobs, err := r.Recent(ctx, 10)
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}
