package driven

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// DatasetProvider supplies the raw section list for a legal code.
// Returned slices are copies; callers may not observe later changes.
type DatasetProvider interface {
	// Load returns every section of the dataset in authored order.
	// Returns ErrUnsupportedType for an unknown kind.
	Load(ctx context.Context, kind domain.DatasetKind) ([]domain.RawSection, error)
}
