package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func TestLegalService_Chapters(t *testing.T) {
	svc := NewLegalService(newMockDatasets())

	chapters, err := svc.Chapters(context.Background(), domain.DatasetIPC)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, "Chapter XVII - Of Offences Against Property", chapters[2].Title)
	assert.Len(t, chapters[2].Sections, 2)
}

func TestLegalService_ChaptersReturnsCopy(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	ctx := context.Background()

	first, _ := svc.Chapters(ctx, domain.DatasetIPC)
	first[0].Sections[0].Description = "tampered"

	second, _ := svc.Chapters(ctx, domain.DatasetIPC)
	assert.NotEqual(t, "tampered", second[0].Sections[0].Description)
}

func TestLegalService_LoadsOnce(t *testing.T) {
	ds := newMockDatasets()
	svc := NewLegalService(ds)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Search(ctx, domain.DatasetIPC, "theft")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), ds.loads.Load())
}

func TestLegalService_Search(t *testing.T) {
	svc := NewLegalService(newMockDatasets())

	result, err := svc.Search(context.Background(), domain.DatasetIPC, "theft")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count())
	require.Len(t, result.Chapters, 1)
	ch := result.Chapters[0]
	assert.Equal(t, "Chapter XVII - Of Offences Against Property", ch.Title)
	assert.Equal(t, "378", ch.Sections[0].Section.Number)
	assert.Equal(t, ch.Sections[0].Section.Description, domain.JoinSpans(ch.Sections[0].DescriptionSpans))
	assert.True(t, ch.Sections[0].DescriptionSpans[0].Matched)
	assert.Equal(t, "Theft", ch.Sections[0].DescriptionSpans[0].Text)
}

func TestLegalService_SearchBlankReturnsEverything(t *testing.T) {
	svc := NewLegalService(newMockDatasets())

	result, err := svc.Search(context.Background(), domain.DatasetCPC, "  ")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count())
	for _, ch := range result.Chapters {
		for _, s := range ch.Sections {
			require.Len(t, s.DescriptionSpans, 1)
			assert.False(t, s.DescriptionSpans[0].Matched)
		}
	}
}

func TestLegalService_SearchNoMatch(t *testing.T) {
	svc := NewLegalService(newMockDatasets())

	result, err := svc.Search(context.Background(), domain.DatasetIPC, "zzzqq")
	require.NoError(t, err)
	assert.True(t, result.IsEmpty())
	assert.Zero(t, result.Count())
}

func TestLegalService_DatasetsAreSeparate(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	ctx := context.Background()

	ipc, err := svc.Search(ctx, domain.DatasetIPC, "appeal")
	require.NoError(t, err)
	cpc, err := svc.Search(ctx, domain.DatasetCPC, "appeal")
	require.NoError(t, err)

	assert.Zero(t, ipc.Count())
	assert.Equal(t, 1, cpc.Count())
}

func TestLegalService_Section(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	ctx := context.Background()

	sec, err := svc.Section(ctx, domain.DatasetIPC, " 302 ")
	require.NoError(t, err)
	assert.Equal(t, "Punishment for murder", sec.Title)

	_, err = svc.Section(ctx, domain.DatasetIPC, "9")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Section(ctx, domain.DatasetIPC, "three")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLegalService_SectionRequiresCanonicalNumber(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	ctx := context.Background()

	for _, number := range []string{"0302", "+302", "302.0", "3 02"} {
		t.Run(number, func(t *testing.T) {
			_, err := svc.Section(ctx, domain.DatasetIPC, number)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestLegalService_ExpandedTitles(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	ctx := context.Background()

	blank, _ := svc.Search(ctx, domain.DatasetIPC, "")
	assert.Empty(t, svc.ExpandedTitles(blank))

	hit, _ := svc.Search(ctx, domain.DatasetIPC, "punishment")
	assert.Equal(t, []string{
		"Chapter XVI - Of Offences Affecting the Human Body",
		"Chapter XVII - Of Offences Against Property",
	}, svc.ExpandedTitles(hit))

	assert.Nil(t, svc.ExpandedTitles(nil))
}

func TestLegalService_ExpandedTitlesWhitespaceQuery(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	ctx := context.Background()

	chapters, err := svc.Chapters(ctx, domain.DatasetIPC)
	require.NoError(t, err)
	want := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		want = append(want, ch.Title)
	}

	result, err := svc.Search(ctx, domain.DatasetIPC, "   ")
	require.NoError(t, err)
	assert.Equal(t, want, svc.ExpandedTitles(result))
}

func TestLegalService_Preload(t *testing.T) {
	ds := newMockDatasets()
	svc := NewLegalService(ds)

	require.NoError(t, svc.Preload(context.Background()))
	assert.Equal(t, int32(2), ds.loads.Load())

	_, err := svc.Chapters(context.Background(), domain.DatasetCPC)
	require.NoError(t, err)
	assert.Equal(t, int32(2), ds.loads.Load())
}

func TestLegalService_PreloadError(t *testing.T) {
	ds := newMockDatasets()
	ds.err = errors.New("disk on fire")
	svc := NewLegalService(ds)

	err := svc.Preload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestLegalService_UnknownKind(t *testing.T) {
	svc := NewLegalService(newMockDatasets())

	_, err := svc.Chapters(context.Background(), domain.DatasetKind("crpc"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestLegalService_Highlight(t *testing.T) {
	svc := NewLegalService(newMockDatasets())
	spans := svc.Highlight("stolen vehicle report", "vehicle")

	require.Len(t, spans, 3)
	assert.Equal(t, "vehicle", spans[1].Text)
}
