package driven

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// Backend is the external FIR service.
// Calls are single request/response exchanges with no retry.
type Backend interface {
	// FetchDocument retrieves the document filed for a FIR.
	// Returns ErrDocumentMissing when the backend has none.
	FetchDocument(ctx context.Context, firID string) (*domain.Document, error)

	// Submit posts a registration with its attachments.
	Submit(ctx context.Context, sub domain.Submission) error
}

// TextExtractor pulls plain text out of a binary document.
type TextExtractor interface {
	// ExtractText returns the text content of a PDF.
	ExtractText(data []byte) (string, error)
}
