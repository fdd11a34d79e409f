package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// --- Mock implementations ---

// mockDatasets implements driven.DatasetProvider for testing.
type mockDatasets struct {
	data  map[domain.DatasetKind][]domain.RawSection
	err   error
	loads atomic.Int32
}

func newMockDatasets() *mockDatasets {
	return &mockDatasets{
		data: map[domain.DatasetKind][]domain.RawSection{
			domain.DatasetIPC: {
				{Number: 1, Title: "Title and extent of operation of the Code", Description: "This Act shall be called the Indian Penal Code.", Chapter: "Chapter I - Introduction"},
				{Number: 302, Title: "Punishment for murder", Description: "Whoever commits murder shall be punished with death or imprisonment for life.", Chapter: "Chapter XVI - Of Offences Affecting the Human Body"},
				{Number: 378, Title: "Theft", Description: "Whoever intends to take dishonestly any movable property out of the possession of any person.", Chapter: "Chapter XVII - Of Offences Against Property"},
				{Number: 379, Title: "Punishment for theft", Description: "Imprisonment up to three years, or fine, or both.", Chapter: "Chapter XVII - Of Offences Against Property"},
			},
			domain.DatasetCPC: {
				{Number: 9, Title: "Courts to try all civil suits unless barred", Description: "The Courts shall have jurisdiction to try all suits of a civil nature.", Chapter: "Part I - Suits in General"},
				{Number: 96, Title: "Appeal from original decree", Description: "An appeal shall lie from every decree passed by any Court exercising original jurisdiction.", Chapter: "Part VII - Appeals"},
			},
		},
	}
}

func (m *mockDatasets) Load(_ context.Context, kind domain.DatasetKind) ([]domain.RawSection, error) {
	m.loads.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	raw, ok := m.data[kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w", kind, domain.ErrUnsupportedType)
	}
	return append([]domain.RawSection(nil), raw...), nil
}

// mockBackend implements driven.Backend for testing.
type mockBackend struct {
	mu        sync.Mutex
	doc       *domain.Document
	fetchErr  error
	submitErr error
	submitted []domain.Submission
}

func (m *mockBackend) FetchDocument(_ context.Context, firID string) (*domain.Document, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	doc := *m.doc
	doc.FIRID = firID
	return &doc, nil
}

func (m *mockBackend) Submit(_ context.Context, sub domain.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitErr != nil {
		return m.submitErr
	}
	m.submitted = append(m.submitted, sub)
	return nil
}

// mockExtractor implements driven.TextExtractor for testing.
type mockExtractor struct {
	text string
	err  error
}

func (m *mockExtractor) ExtractText(_ []byte) (string, error) {
	return m.text, m.err
}
