// Package legal provides the IPC/CPC reference view with live filtering.
package legal

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/input"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/list"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/status"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/keymap"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// chromeHeight is the number of lines used around the outline.
const chromeHeight = 9

// View shows one legal code as a filterable, collapsible outline.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	tr        domain.Translation
	input     *input.Field
	outline   *list.Outline
	statusbar *status.Bar

	legal driving.LegalService
	ctx   context.Context

	kind   domain.DatasetKind
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new legal reference view.
func NewView(s *styles.Styles, km *keymap.KeyMap, legal driving.LegalService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	tr := domain.Translations(domain.DefaultLanguage)
	bar := status.NewBar(s, km)
	bar.SetHints(km.LegalHelp())

	v := &View{
		styles:    s,
		keymap:    km,
		tr:        tr,
		input:     input.NewField(s, "", tr.T(domain.TextSearchLaws)),
		outline:   list.NewOutline(s),
		statusbar: bar,
		legal:     legal,
		ctx:       context.Background(),
		kind:      domain.DatasetIPC,
		width:     80,
		height:    24,
	}
	v.outline.SetEmptyText(tr.T(domain.TextNoResults))
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the outline for the current code and query.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.filter())
}

// Update handles messages for the legal view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.LegalFiltered:
		v.handleFiltered(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case tea.KeyUp:
		v.outline.MoveUp()
		return v, nil
	case tea.KeyDown:
		v.outline.MoveDown()
		return v, nil
	case tea.KeyEnter:
		v.outline.Toggle()
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.SwitchCode):
		v.SetKind(v.otherKind())
		return v, v.filter()
	case keymap.Matches(msg.String(), v.keymap.ExpandAll):
		v.outline.ToggleAll()
		return v, nil
	}

	// Everything else edits the filter; refilter on every change.
	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if v.input.Value() != before {
		return v, tea.Batch(cmd, v.filter())
	}
	return v, cmd
}

// filter returns a command that searches the current code.
func (v *View) filter() tea.Cmd {
	if v.legal == nil {
		return nil
	}
	kind, query, ctx := v.kind, v.input.Value(), v.ctx
	return func() tea.Msg {
		result, err := v.legal.Search(ctx, kind, query)
		if err != nil {
			return messages.LegalFiltered{Kind: kind, Query: query, Err: err}
		}
		return messages.LegalFiltered{
			Kind:     kind,
			Query:    query,
			Result:   result,
			Expanded: v.legal.ExpandedTitles(result),
		}
	}
}

func (v *View) handleFiltered(msg messages.LegalFiltered) {
	// A newer keystroke or tab switch has superseded this result.
	if msg.Kind != v.kind || msg.Query != v.input.Value() {
		return
	}
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	v.err = nil
	v.outline.SetResult(msg.Result, msg.Expanded)
	if strings.TrimSpace(msg.Query) == "" {
		v.statusbar.Clear()
		v.statusbar.SetMessage(msg.Kind.Title())
		return
	}
	v.statusbar.SetResultCount(msg.Result.Count())
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) otherKind() domain.DatasetKind {
	if v.kind == domain.DatasetIPC {
		return domain.DatasetCPC
	}
	return domain.DatasetIPC
}

// View renders the legal reference.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.tr.T(domain.TextLegalReference)))
	b.WriteString("\n\n")
	b.WriteString(v.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")
	b.WriteString(v.outline.View())
	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, kind := range domain.DatasetKinds() {
		label := v.tr.T(domain.TextIPCTitle)
		if kind == domain.DatasetCPC {
			label = v.tr.T(domain.TextCPCTitle)
		}
		style := v.styles.Tab
		if kind == v.kind {
			style = v.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(label))
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// SetKind switches the displayed code.
func (v *View) SetKind(kind domain.DatasetKind) {
	v.kind = kind
}

// SetLanguage switches labels to lang.
func (v *View) SetLanguage(lang domain.Language) {
	v.tr = domain.Translations(lang)
	v.input.SetPlaceholder(v.tr.T(domain.TextSearchLaws))
	v.outline.SetEmptyText(v.tr.T(domain.TextNoResults))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.outline.SetDimensions(width, max(height-chromeHeight, 3))
	v.statusbar.SetWidth(width)
}

// Kind returns the displayed code.
func (v *View) Kind() domain.DatasetKind {
	return v.kind
}

// Query returns the current filter text.
func (v *View) Query() string {
	return v.input.Value()
}

// Outline returns the outline component.
func (v *View) Outline() *list.Outline {
	return v.outline
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
