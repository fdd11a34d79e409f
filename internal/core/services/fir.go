package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// Ensure FIRService implements the interface.
var _ driving.FIRService = (*FIRService)(nil)

var pdfMagic = []byte("%PDF")

// FIRService tracks registered FIRs.
type FIRService struct {
	store     driven.FIRStore
	backend   driven.Backend
	extractor driven.TextExtractor
}

// NewFIRService creates a new FIR tracker service.
// The backend and extractor parameters are optional (can be nil).
func NewFIRService(store driven.FIRStore, backend driven.Backend, extractor driven.TextExtractor) *FIRService {
	return &FIRService{
		store:     store,
		backend:   backend,
		extractor: extractor,
	}
}

// Lookup returns the FIR with the exact ID.
func (s *FIRService) Lookup(ctx context.Context, id string) (*domain.FIR, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: FIR number is required", domain.ErrInvalidInput)
	}

	fir, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", id, err)
	}
	return fir, nil
}

// Search returns FIRs whose ID, station, type or description contain query.
func (s *FIRService) Search(ctx context.Context, query string) ([]domain.FIR, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list FIRs: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return all, nil
	}

	matches := make([]domain.FIR, 0)
	for i := range all {
		if all[i].Matches(term) {
			matches = append(matches, all[i])
		}
	}
	logger.Debug("FIR search %q: %d of %d records", query, len(matches), len(all))
	return matches, nil
}

// Document retrieves the filed document for a known FIR.
func (s *FIRService) Document(ctx context.Context, id string) (*domain.Document, error) {
	fir, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.backend == nil {
		return nil, fmt.Errorf("document %s: %w", fir.ID, domain.ErrBackendUnavailable)
	}

	doc, err := s.backend.FetchDocument(ctx, fir.ID)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", fir.ID, err)
	}
	return doc, nil
}

// DocumentText retrieves the document and extracts its text.
func (s *FIRService) DocumentText(ctx context.Context, id string) (string, error) {
	if s.extractor == nil {
		return "", fmt.Errorf("text extraction: %w", domain.ErrUnsupportedType)
	}

	doc, err := s.Document(ctx, id)
	if err != nil {
		return "", err
	}
	if !isPDF(doc) {
		return "", fmt.Errorf("document %s is %q: %w", doc.FIRID, doc.ContentType, domain.ErrUnsupportedType)
	}

	text, err := s.extractor.ExtractText(doc.Data)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", doc.FIRID, err)
	}
	return text, nil
}

func isPDF(doc *domain.Document) bool {
	if strings.HasPrefix(doc.ContentType, "application/pdf") {
		return true
	}
	return bytes.HasPrefix(doc.Data, pdfMagic)
}
