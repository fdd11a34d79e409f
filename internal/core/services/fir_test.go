package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/adapters/driven/storage/memory"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
)

func testFIRs() []domain.FIR {
	return []domain.FIR{
		{ID: "FIR2025001", Status: domain.FIRPending, Language: domain.LanguageEnglish, Station: "Central Police Station, Delhi", Date: "2025-01-15", Type: "Theft", Description: "Report of stolen vehicle from residential parking"},
		{ID: "FIR2025003", Status: domain.FIRResolved, Language: domain.LanguageBengali, Station: "Lake Police Station, Kolkata", Date: "2025-01-20", Type: "Cybercrime", Description: "Online banking fraud case"},
		{ID: "FIR2025006", Status: domain.FIRInProgress, Language: domain.LanguageMarathi, Station: "Deccan Police Station, Pune", Date: "2025-01-28", Type: "Fraud", Description: "Investment scheme fraud case"},
	}
}

func newTestFIRService(backend driven.Backend, extractor driven.TextExtractor) *FIRService {
	return NewFIRService(memory.NewFIRStore(testFIRs()...), backend, extractor)
}

func TestFIRService_Lookup(t *testing.T) {
	svc := newTestFIRService(nil, nil)
	ctx := context.Background()

	fir, err := svc.Lookup(ctx, " FIR2025003 ")
	require.NoError(t, err)
	assert.Equal(t, "Lake Police Station, Kolkata", fir.Station)

	_, err = svc.Lookup(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Lookup(ctx, "FIR2025999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Lookup(ctx, "fir2025001")
	assert.ErrorIs(t, err, domain.ErrNotFound, "lookup is an exact match")
}

func TestFIRService_Search(t *testing.T) {
	svc := newTestFIRService(nil, nil)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"FIR2025001", "FIR2025003", "FIR2025006"}},
		{"fraud", []string{"FIR2025003", "FIR2025006"}},
		{"PUNE", []string{"FIR2025006"}},
		{"fir2025001", []string{"FIR2025001"}},
		{"vehicle", []string{"FIR2025001"}},
		{"arson", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)
			var ids []string
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFIRService_Document(t *testing.T) {
	backend := &mockBackend{doc: &domain.Document{ContentType: "application/pdf", Data: []byte("%PDF-1.4")}}
	svc := newTestFIRService(backend, nil)

	doc, err := svc.Document(context.Background(), "FIR2025001")
	require.NoError(t, err)
	assert.Equal(t, "FIR2025001", doc.FIRID)
	assert.Equal(t, "application/pdf", doc.ContentType)
}

func TestFIRService_Document_UnknownFIRSkipsBackend(t *testing.T) {
	backend := &mockBackend{fetchErr: errors.New("should not be called")}
	svc := newTestFIRService(backend, nil)

	_, err := svc.Document(context.Background(), "FIR2025999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFIRService_Document_Missing(t *testing.T) {
	backend := &mockBackend{fetchErr: domain.ErrDocumentMissing}
	svc := newTestFIRService(backend, nil)

	_, err := svc.Document(context.Background(), "FIR2025001")
	assert.ErrorIs(t, err, domain.ErrDocumentMissing)
}

func TestFIRService_Document_NoBackend(t *testing.T) {
	svc := newTestFIRService(nil, nil)

	_, err := svc.Document(context.Background(), "FIR2025001")
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestFIRService_DocumentText(t *testing.T) {
	backend := &mockBackend{doc: &domain.Document{ContentType: "application/octet-stream", Data: []byte("%PDF-1.7 ...")}}
	svc := newTestFIRService(backend, &mockExtractor{text: "FIRST INFORMATION REPORT"})

	text, err := svc.DocumentText(context.Background(), "FIR2025001")
	require.NoError(t, err)
	assert.Equal(t, "FIRST INFORMATION REPORT", text)
}

func TestFIRService_DocumentText_NotPDF(t *testing.T) {
	backend := &mockBackend{doc: &domain.Document{ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}}
	svc := newTestFIRService(backend, &mockExtractor{text: "unused"})

	_, err := svc.DocumentText(context.Background(), "FIR2025001")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestFIRService_DocumentText_NoExtractor(t *testing.T) {
	backend := &mockBackend{doc: &domain.Document{ContentType: "application/pdf"}}
	svc := newTestFIRService(backend, nil)

	_, err := svc.DocumentText(context.Background(), "FIR2025001")
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
