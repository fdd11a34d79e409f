package driving

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// FIRService looks up registered FIRs and their documents.
type FIRService interface {
	// Lookup returns the FIR with the exact ID.
	// Returns ErrInvalidInput for a blank ID and ErrNotFound if unknown.
	Lookup(ctx context.Context, id string) (*domain.FIR, error)

	// Search returns FIRs whose ID, station, type or description contain
	// query, case-insensitively. A blank query returns every FIR.
	Search(ctx context.Context, query string) ([]domain.FIR, error)

	// Document retrieves the filed document from the backend.
	Document(ctx context.Context, id string) (*domain.Document, error)

	// DocumentText retrieves the document and extracts its text.
	DocumentText(ctx context.Context, id string) (string, error)
}

// RegistrationService files new FIRs.
type RegistrationService interface {
	// Validate checks a registration without submitting it.
	Validate(reg domain.Registration) error

	// Submit validates, records and delivers a registration.
	// The submission is kept in the outbox when delivery fails, and the
	// returned error wraps ErrBackendUnavailable.
	Submit(ctx context.Context, reg domain.Registration) (*domain.Submission, error)

	// Pending lists submissions the backend has not accepted yet.
	Pending(ctx context.Context) ([]domain.Submission, error)

	// Retry redelivers one pending submission.
	Retry(ctx context.Context, id string) (*domain.Submission, error)
}
