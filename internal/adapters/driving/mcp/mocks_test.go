package mcp

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// mockLegalService is a mock implementation of driving.LegalService.
type mockLegalService struct {
	chapters []domain.Chapter
	result   *domain.SearchResult
	section  *domain.RawSection
	err      error

	lastKind   domain.DatasetKind
	lastQuery  string
	lastNumber string
}

func (m *mockLegalService) Chapters(_ context.Context, kind domain.DatasetKind) ([]domain.Chapter, error) {
	m.lastKind = kind
	return m.chapters, m.err
}

func (m *mockLegalService) Search(_ context.Context, kind domain.DatasetKind, query string) (*domain.SearchResult, error) {
	m.lastKind = kind
	m.lastQuery = query
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.SearchResult{Kind: kind, Query: query}, nil
	}
	return m.result, nil
}

func (m *mockLegalService) Section(_ context.Context, kind domain.DatasetKind, number string) (*domain.RawSection, error) {
	m.lastKind = kind
	m.lastNumber = number
	return m.section, m.err
}

func (m *mockLegalService) Highlight(text, _ string) []domain.Span {
	return []domain.Span{{Text: text, End: len(text)}}
}

func (m *mockLegalService) ExpandedTitles(_ *domain.SearchResult) []string {
	return nil
}

func (m *mockLegalService) Preload(_ context.Context) error {
	return m.err
}

// mockFIRService is a mock implementation of driving.FIRService.
type mockFIRService struct {
	fir *domain.FIR
	err error
}

func (m *mockFIRService) Lookup(_ context.Context, _ string) (*domain.FIR, error) {
	return m.fir, m.err
}

func (m *mockFIRService) Search(_ context.Context, _ string) ([]domain.FIR, error) {
	if m.fir == nil {
		return nil, m.err
	}
	return []domain.FIR{*m.fir}, m.err
}

func (m *mockFIRService) Document(_ context.Context, _ string) (*domain.Document, error) {
	return nil, m.err
}

func (m *mockFIRService) DocumentText(_ context.Context, _ string) (string, error) {
	return "", m.err
}
