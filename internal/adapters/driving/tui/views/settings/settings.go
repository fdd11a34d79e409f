// Package settings provides the preferences view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/keymap"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// Row identifies an editable preference.
type Row int

const (
	RowLanguage Row = iota
	RowTheme
	RowVision
	rowCount
)

// View edits language, theme and vision mode.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService

	// saved is the last persisted state; draft holds unsaved edits.
	saved domain.Preferences
	draft domain.Preferences
	err   error

	selected Row
	notice   string

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view. settingsService may be nil, in
// which case edits cannot be saved.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	prefs := domain.DefaultPreferences()
	if settingsService != nil {
		prefs = settingsService.Preferences()
	}

	return &View{
		styles:          s,
		keymap:          km,
		settingsService: settingsService,
		saved:           prefs,
		draft:           prefs,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PreferencesSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.saved = msg.Preferences
		v.draft = msg.Preferences
		v.notice = "Saved"
		return v, nil

	case messages.PreferencesChanged:
		// Edits in progress win over changes made elsewhere.
		if !v.Dirty() {
			v.draft = msg.Preferences
		}
		v.saved = msg.Preferences
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	s := msg.String()
	switch {
	case keymap.Matches(s, v.keymap.Back):
		v.draft = v.saved
		v.notice = ""
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(s, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(s, v.keymap.Down):
		if v.selected < rowCount-1 {
			v.selected++
		}
	case keymap.Matches(s, v.keymap.Prev):
		v.cycle(-1)
	case keymap.Matches(s, v.keymap.Next):
		v.cycle(1)
	case keymap.Matches(s, v.keymap.Select):
		return v, v.save()
	}
	return v, nil
}

// cycle moves the selected row's value by delta, wrapping around.
func (v *View) cycle(delta int) {
	v.notice = ""
	switch v.selected {
	case RowLanguage:
		v.draft = v.draft.WithLanguage(step(domain.Languages(), v.draft.Language, delta))
	case RowTheme:
		v.draft = v.draft.WithDark(!v.draft.Dark)
	case RowVision:
		v.draft = v.draft.WithColorblind(step(domain.ColorblindModes(), v.draft.Colorblind, delta))
	}
}

func step[T comparable](values []T, current T, delta int) T {
	idx := 0
	for i, val := range values {
		if val == current {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

// save returns a command that persists the draft.
func (v *View) save() tea.Cmd {
	if v.settingsService == nil {
		v.err = fmt.Errorf("settings service not available")
		return nil
	}
	prefs := v.draft
	return func() tea.Msg {
		err := v.settingsService.SavePreferences(prefs)
		return messages.PreferencesSaved{Preferences: prefs, Err: err}
	}
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	rows := []struct {
		label string
		value string
	}{
		{label: "Language", value: fmt.Sprintf("%s (%s)", v.draft.Language.NativeName(), v.draft.Language)},
		{label: "Theme", value: themeName(v.draft.Dark)},
		{label: "Vision", value: v.draft.Colorblind.Description()},
	}

	for i, row := range rows {
		indicator := "  "
		if Row(i) == v.selected {
			indicator = "> "
		}
		line := fmt.Sprintf("%s%-10s < %s >", indicator, row.label, row.value)
		if Row(i) == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.settingsService != nil {
		backend := v.settingsService.Backend()
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("FIR service: %s", backend.URL)))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Data directory: %s", v.settingsService.DataDir())))
		b.WriteString("\n\n")
	}

	switch {
	case v.Dirty():
		b.WriteString(v.styles.Warning.Render("Unsaved changes"))
	case v.notice != "":
		b.WriteString(v.styles.Success.Render(v.notice))
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[up/down] choose  [left/right] change  [enter] save  [esc] back"))

	return b.String()
}

func themeName(dark bool) string {
	if dark {
		return "Dark"
	}
	return "Light"
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset discards unsaved edits and reloads saved preferences.
func (v *View) Reset() {
	if v.settingsService != nil {
		v.saved = v.settingsService.Preferences()
	}
	v.draft = v.saved
	v.selected = RowLanguage
	v.notice = ""
	v.err = nil
}

// Dirty reports whether the draft differs from the saved preferences.
func (v *View) Dirty() bool {
	return v.draft != v.saved
}

// Draft returns the preferences being edited.
func (v *View) Draft() domain.Preferences {
	return v.draft
}

// Selected returns the highlighted row.
func (v *View) Selected() Row {
	return v.selected
}
