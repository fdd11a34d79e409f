package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func theftResult() *domain.SearchResult {
	return &domain.SearchResult{
		Kind:  domain.DatasetIPC,
		Query: "theft",
		Chapters: []domain.ChapterMatch{{
			Title: "Chapter XVII: Of Offences Against Property",
			Sections: []domain.SectionMatch{
				{
					Section: domain.Section{Number: "378", Description: "Theft: Definition of theft"},
					DescriptionSpans: []domain.Span{
						{Text: "Theft", Matched: true, End: 5},
						{Text: ": Definition of ", Start: 5, End: 21},
						{Text: "theft", Matched: true, Start: 21, End: 26},
					},
				},
				{
					Section: domain.Section{Number: "379", Description: "Punishment for theft: Imprisonment up to three years"},
				},
			},
		}},
	}
}

func TestServer_handleSearchSections(t *testing.T) {
	ctx := context.Background()

	t.Run("returns matching sections", func(t *testing.T) {
		legal := &mockLegalService{result: theftResult()}
		server, err := NewServer(&Ports{Legal: legal})
		require.NoError(t, err)

		_, output, err := server.handleSearchSections(ctx, nil, SearchInput{Query: "theft"})

		require.NoError(t, err)
		assert.Equal(t, domain.DatasetIPC, legal.lastKind)
		assert.Equal(t, "ipc", output.Code)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Results, 2)
		assert.Equal(t, "378", output.Results[0].Number)
		assert.Equal(t, "Chapter XVII: Of Offences Against Property", output.Results[0].Chapter)
		assert.Equal(t, "**Theft**: Definition of **theft**", output.Results[0].Highlighted)
	})

	t.Run("limit caps results", func(t *testing.T) {
		server, err := NewServer(&Ports{Legal: &mockLegalService{result: theftResult()}})
		require.NoError(t, err)

		_, output, err := server.handleSearchSections(ctx, nil, SearchInput{Query: "theft", Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Len(t, output.Results, 1)
	})

	t.Run("cpc code is passed through", func(t *testing.T) {
		legal := &mockLegalService{}
		server, err := NewServer(&Ports{Legal: legal})
		require.NoError(t, err)

		_, output, err := server.handleSearchSections(ctx, nil, SearchInput{Query: "suit", Code: "CPC"})

		require.NoError(t, err)
		assert.Equal(t, domain.DatasetCPC, legal.lastKind)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Results)
	})

	t.Run("unknown code is invalid input", func(t *testing.T) {
		server, err := NewServer(&Ports{Legal: &mockLegalService{}})
		require.NoError(t, err)

		_, _, err = server.handleSearchSections(ctx, nil, SearchInput{Query: "x", Code: "crpc"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Legal: &mockLegalService{err: errors.New("search failed")}})
		require.NoError(t, err)

		_, _, err = server.handleSearchSections(ctx, nil, SearchInput{Query: "test"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleGetSection(t *testing.T) {
	ctx := context.Background()

	t.Run("returns section", func(t *testing.T) {
		legal := &mockLegalService{section: &domain.RawSection{
			Number:      302,
			Title:       "Punishment for murder",
			Description: "Death or imprisonment for life, and fine",
			Chapter:     "Chapter XVI: Of Offences Affecting the Human Body",
		}}
		server, err := NewServer(&Ports{Legal: legal})
		require.NoError(t, err)

		_, output, err := server.handleGetSection(ctx, nil, GetSectionInput{Number: "302"})

		require.NoError(t, err)
		assert.Equal(t, "302", legal.lastNumber)
		assert.Equal(t, 302, output.Number)
		assert.Equal(t, "Punishment for murder", output.Title)
		assert.Equal(t, "ipc", output.Code)
	})

	t.Run("not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Legal: &mockLegalService{err: domain.ErrNotFound}})
		require.NoError(t, err)

		_, _, err = server.handleGetSection(ctx, nil, GetSectionInput{Number: "9999"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestServer_handleGetFIR(t *testing.T) {
	ctx := context.Background()

	t.Run("returns fir", func(t *testing.T) {
		fir := &domain.FIR{
			ID:      "FIR2025001",
			Status:  domain.FIRInProgress,
			Station: "Connaught Place",
			Type:    "Theft",
		}
		server, err := NewServer(&Ports{Legal: &mockLegalService{}, FIR: &mockFIRService{fir: fir}})
		require.NoError(t, err)

		_, output, err := server.handleGetFIR(ctx, nil, GetFIRInput{ID: "FIR2025001"})

		require.NoError(t, err)
		assert.Equal(t, "FIR2025001", output.ID)
		assert.Equal(t, "in_progress", output.Status)
		assert.Equal(t, domain.FIRInProgress.Label(domain.LanguageEnglish), output.StatusLabel)
	})

	t.Run("unknown fir", func(t *testing.T) {
		server, err := NewServer(&Ports{Legal: &mockLegalService{}, FIR: &mockFIRService{err: domain.ErrNotFound}})
		require.NoError(t, err)

		_, _, err = server.handleGetFIR(ctx, nil, GetFIRInput{ID: "FIR0"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no fir service", func(t *testing.T) {
		server, err := NewServer(&Ports{Legal: &mockLegalService{}})
		require.NoError(t, err)

		_, _, err = server.handleGetFIR(ctx, nil, GetFIRInput{ID: "FIR2025001"})

		assert.ErrorIs(t, err, errNoFIRService)
	})
}

func TestMarkSpans(t *testing.T) {
	spans := []domain.Span{
		{Text: "Punishment for "},
		{Text: "theft", Matched: true},
	}
	assert.Equal(t, "Punishment for **theft**", markSpans(spans))
	assert.Empty(t, markSpans(nil))
}
