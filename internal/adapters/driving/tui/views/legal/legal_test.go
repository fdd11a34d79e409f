package legal

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/adapters/driven/dataset"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/services"
)

const propertyChapter = "Chapter XVII: Offences Against Property"

func newTestView(t *testing.T) *View {
	t.Helper()
	provider, err := dataset.New("")
	require.NoError(t, err)

	v := NewView(nil, nil, services.NewLegalService(provider))
	v.SetDimensions(120, 40)
	return v
}

// typeText feeds runes one at a time and applies each filter result.
func typeText(t *testing.T, v *View, text string) {
	t.Helper()
	for _, r := range text {
		_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		require.NotNil(t, cmd)
		v.Update(v.filter()())
	}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	require.NotNil(t, v)
	assert.Equal(t, domain.DatasetIPC, v.Kind())
	assert.Empty(t, v.Query())
	assert.Nil(t, v.filter())
}

func TestView_InitialOutlineIsCollapsed(t *testing.T) {
	v := newTestView(t)

	v.Update(v.filter()())

	require.NoError(t, v.Err())
	assert.False(t, v.Outline().IsEmpty())
	assert.False(t, v.Outline().IsExpanded(propertyChapter))
	assert.Contains(t, v.View(), propertyChapter)
}

func TestView_LiveFilterExpandsMatches(t *testing.T) {
	v := newTestView(t)

	typeText(t, v, "theft")

	assert.Equal(t, "theft", v.Query())
	assert.True(t, v.Outline().IsExpanded(propertyChapter))
	out := v.View()
	assert.Contains(t, out, "378")
	assert.Contains(t, out, "results")
	assert.NotContains(t, out, "Chapter I: Introduction")
}

func TestView_NoMatches(t *testing.T) {
	v := newTestView(t)

	typeText(t, v, "zzzz")

	assert.True(t, v.Outline().IsEmpty())
	assert.Contains(t, v.View(), "No sections found")
}

func TestView_StaleResultsAreDropped(t *testing.T) {
	v := newTestView(t)
	v.Update(v.filter()())
	rows := v.Outline().RowCount()

	v.Update(messages.LegalFiltered{
		Kind:   domain.DatasetIPC,
		Query:  "old query",
		Result: &domain.SearchResult{Kind: domain.DatasetIPC},
	})

	assert.Equal(t, rows, v.Outline().RowCount())
}

func TestView_TabSwitchesCode(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.DatasetCPC, v.Kind())

	v.Update(cmd())
	assert.Contains(t, v.View(), "Code of Civil Procedure")

	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.DatasetIPC, v.Kind())
}

func TestView_EnterTogglesChapter(t *testing.T) {
	v := newTestView(t)
	v.Update(v.filter()())

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, v.Outline().IsExpanded("Chapter I: Introduction"))
}

func TestView_ExpandAll(t *testing.T) {
	v := newTestView(t)
	v.Update(v.filter()())

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlE})

	assert.True(t, v.Outline().AllExpanded())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := newTestView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_SearchError(t *testing.T) {
	v := newTestView(t)

	v.Update(messages.LegalFiltered{Kind: domain.DatasetIPC, Err: errors.New("dataset unreadable")})

	assert.EqualError(t, v.Err(), "dataset unreadable")
	assert.Contains(t, v.View(), "dataset unreadable")
}

func TestView_SetLanguage(t *testing.T) {
	v := newTestView(t)
	v.Update(v.filter()())

	v.SetLanguage(domain.LanguageHindi)

	out := v.View()
	assert.Contains(t, out, "कानूनी संदर्भ")
	assert.Contains(t, out, "भारतीय दंड संहिता")
}

func TestView_WithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	v := NewView(nil, nil, nil).WithContext(ctx)

	assert.Equal(t, ctx, v.ctx)
}

func TestView_NotReady(t *testing.T) {
	assert.Equal(t, "Initialising...", NewView(nil, nil, nil).View())
}
