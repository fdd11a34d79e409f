// Package pdftext extracts plain text from FIR documents using a pure Go
// PDF reader, so no poppler install is needed.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor implements driven.TextExtractor for PDF documents.
type Extractor struct{}

// New creates a PDF text extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text of every page joined in page order.
func (e *Extractor) ExtractText(data []byte) (text string, err error) {
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", fmt.Errorf("%w: not a PDF document", domain.ErrUnsupportedType)
	}

	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", domain.ErrInvalidInput, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", domain.ErrInvalidInput, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text: %w", err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
