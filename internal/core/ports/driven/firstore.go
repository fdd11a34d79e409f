package driven

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// FIRStore persists FIR records.
type FIRStore interface {
	// Save stores or updates a record.
	Save(ctx context.Context, fir domain.FIR) error

	// Get retrieves a record by its exact ID.
	// Returns ErrNotFound if no record has that ID.
	Get(ctx context.Context, id string) (*domain.FIR, error)

	// List returns all records ordered by ID.
	List(ctx context.Context) ([]domain.FIR, error)
}

// SubmissionStore is the local outbox for registrations.
type SubmissionStore interface {
	// Save stores or updates a submission.
	Save(ctx context.Context, sub domain.Submission) error

	// Get retrieves a submission by ID.
	// Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Submission, error)

	// ListPending returns submissions not yet accepted by the backend,
	// oldest first.
	ListPending(ctx context.Context) ([]domain.Submission, error)
}
