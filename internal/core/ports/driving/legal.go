package driving

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// LegalService provides the legal reference outline and its search.
type LegalService interface {
	// Chapters returns the normalised outline of a legal code.
	Chapters(ctx context.Context, kind domain.DatasetKind) ([]domain.Chapter, error)

	// Search filters the outline by query and annotates matches.
	// A blank query returns the whole outline. No match is an empty
	// result, not an error.
	Search(ctx context.Context, kind domain.DatasetKind, query string) (*domain.SearchResult, error)

	// Section looks up one section by its number.
	// Returns ErrNotFound if the code has no such section.
	Section(ctx context.Context, kind domain.DatasetKind, number string) (*domain.RawSection, error)

	// Highlight splits text into plain and matched spans for query.
	Highlight(text, query string) []domain.Span

	// ExpandedTitles returns the chapter titles a viewer should expand
	// when showing result.
	ExpandedTitles(result *domain.SearchResult) []string

	// Preload loads and normalises every legal code.
	Preload(ctx context.Context) error
}
