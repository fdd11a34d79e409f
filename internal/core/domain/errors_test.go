package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrInvalidInput", ErrInvalidInput, "invalid input"},
		{"ErrUnsupportedType", ErrUnsupportedType, "unsupported type"},
		{"ErrBackendUnavailable", ErrBackendUnavailable, "backend unavailable"},
		{"ErrDocumentMissing", ErrDocumentMissing, "document not available"},
		{"ErrInvalidTransition", ErrInvalidTransition, "invalid transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestErrors_WrappedStillMatch(t *testing.T) {
	err := fmt.Errorf("lookup FIR2025099: %w", ErrNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}
