package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles())

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.items, 6)
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	assert.Nil(t, NewView(nil).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.selected)

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for range 10 {
		view.Update(j)
	}
	assert.Equal(t, 5, view.selected, "stops at last item")

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 4, view.selected)

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	for range 10 {
		view.Update(k)
	}
	assert.Equal(t, 0, view.selected, "stops at first item")
}

func TestView_Update_EnterChangesView(t *testing.T) {
	tests := []struct {
		index int
		view  messages.ViewType
	}{
		{0, messages.ViewLegal},
		{1, messages.ViewTracker},
		{2, messages.ViewChat},
		{3, messages.ViewSettings},
		{4, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.view.String(), func(t *testing.T) {
			view := NewView(nil)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.view}, cmd())
		})
	}
}

func TestView_Update_Quit(t *testing.T) {
	t.Run("quit item", func(t *testing.T) {
		view := NewView(nil)
		view.selected = 5

		_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("q key", func(t *testing.T) {
		_, cmd := NewView(nil).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestView_View(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		assert.Equal(t, "Initialising...", NewView(nil).View())
	})

	t.Run("english labels", func(t *testing.T) {
		view := NewView(nil)
		view.SetDimensions(80, 24)

		out := view.View()
		assert.Contains(t, out, "Legal Reference")
		assert.Contains(t, out, "FIR Tracker")
		assert.Contains(t, out, "Legal Assistant")
		assert.Contains(t, out, "Settings")
	})

	t.Run("hindi labels", func(t *testing.T) {
		view := NewView(nil)
		view.SetDimensions(80, 24)
		view.SetLanguage(domain.LanguageHindi)

		out := view.View()
		assert.Contains(t, out, "कानूनी संदर्भ")
		assert.Contains(t, out, "एफआईआर ट्रैकर")
	})
}
