package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatasetKind(t *testing.T) {
	tests := []struct {
		in      string
		want    DatasetKind
		wantErr bool
	}{
		{"ipc", DatasetIPC, false},
		{"IPC", DatasetIPC, false},
		{"  cpc ", DatasetCPC, false},
		{"crpc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDatasetKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatasetKind_Title(t *testing.T) {
	assert.Equal(t, "Indian Penal Code (IPC)", DatasetIPC.Title())
	assert.Equal(t, "Code of Civil Procedure (CPC)", DatasetCPC.Title())
	assert.Equal(t, "Unknown", DatasetKind("x").Title())
}

func TestDatasetKinds_Order(t *testing.T) {
	assert.Equal(t, []DatasetKind{DatasetIPC, DatasetCPC}, DatasetKinds())
	for _, k := range DatasetKinds() {
		assert.True(t, k.IsValid())
	}
}

func TestCountSections(t *testing.T) {
	chapters := []Chapter{
		{Title: "A", Sections: []Section{{Number: "1"}, {Number: "2"}}},
		{Title: "B", Sections: []Section{{Number: "3"}}},
	}
	assert.Equal(t, 3, CountSections(chapters))
	assert.Equal(t, 0, CountSections(nil))
}

func TestSearchResult_Count(t *testing.T) {
	r := &SearchResult{
		Chapters: []ChapterMatch{
			{Title: "A", Sections: []SectionMatch{{}, {}}},
			{Title: "B", Sections: []SectionMatch{{}}},
		},
	}
	assert.Equal(t, 3, r.Count())
	assert.False(t, r.IsEmpty())
	assert.True(t, (&SearchResult{}).IsEmpty())
}

func TestJoinSpans(t *testing.T) {
	spans := []Span{
		{Text: "stolen ", Start: 0, End: 7},
		{Text: "vehicle", Matched: true, Start: 7, End: 14},
		{Text: " report", Start: 14, End: 21},
	}
	assert.Equal(t, "stolen vehicle report", JoinSpans(spans))
	assert.Empty(t, JoinSpans(nil))
}
