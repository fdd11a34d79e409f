// Package tracker provides the FIR status lookup view for the TUI.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/input"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/status"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/keymap"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// View looks up a FIR by number and shows its status and document.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	tr        domain.Translation
	lang      domain.Language
	input     *input.Field
	statusbar *status.Bar
	document  viewport.Model

	firService          driving.FIRService
	registrationService driving.RegistrationService
	ctx                 context.Context

	fir      *domain.FIR
	docText  string
	pending  int
	loading  bool
	err      error
	width    int
	height   int
	ready    bool
	showDocs bool
}

// NewView creates a new tracker view. registration may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	firService driving.FIRService,
	registration driving.RegistrationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	tr := domain.Translations(domain.DefaultLanguage)
	bar := status.NewBar(s, km)
	bar.SetHints([]key.Binding{km.Select, km.Document, km.Back})

	return &View{
		styles:              s,
		keymap:              km,
		tr:                  tr,
		lang:                domain.DefaultLanguage,
		input:               input.NewField(s, "FIR", tr.T(domain.TextPlaceholder)),
		statusbar:           bar,
		document:            viewport.New(80, 10),
		firService:          firService,
		registrationService: registration,
		ctx:                 context.Background(),
		width:               80,
		height:              24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init focuses the input and loads the outbox count.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadPending())
}

// Reset clears the previous lookup.
func (v *View) Reset() {
	v.input.Reset()
	v.input.Focus()
	v.fir = nil
	v.docText = ""
	v.showDocs = false
	v.loading = false
	v.err = nil
	v.statusbar.Clear()
}

// Update handles messages for the tracker view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.FIRLoaded:
		v.handleFIRLoaded(msg)
		return v, nil

	case messages.DocumentTextLoaded:
		v.handleDocumentLoaded(msg)
		return v, nil

	case messages.PendingLoaded:
		if msg.Err == nil {
			v.pending = len(msg.Submissions)
		}
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
		if v.showDocs {
			v.showDocs = false
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case tea.KeyEnter:
		return v, v.lookup()
	}

	if keymap.Matches(msg.String(), v.keymap.Document) {
		return v, v.loadDocument()
	}

	if v.showDocs {
		var cmd tea.Cmd
		v.document, cmd = v.document.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// lookup returns a command that fetches the FIR in the input.
func (v *View) lookup() tea.Cmd {
	if v.firService == nil || v.loading {
		return nil
	}
	id := strings.TrimSpace(v.input.Value())
	v.loading = true
	v.showDocs = false
	v.statusbar.SetState(status.StateLoading)
	v.statusbar.SetMessage(v.tr.T(domain.TextFetching))

	ctx := v.ctx
	return func() tea.Msg {
		fir, err := v.firService.Lookup(ctx, id)
		return messages.FIRLoaded{ID: id, FIR: fir, Err: err}
	}
}

// loadDocument returns a command that extracts the current FIR's document.
func (v *View) loadDocument() tea.Cmd {
	if v.firService == nil || v.fir == nil || v.loading {
		return nil
	}
	id := v.fir.ID
	v.loading = true
	v.statusbar.SetState(status.StateLoading)
	v.statusbar.SetMessage(v.tr.T(domain.TextFetching))

	ctx := v.ctx
	return func() tea.Msg {
		text, err := v.firService.DocumentText(ctx, id)
		return messages.DocumentTextLoaded{ID: id, Text: text, Err: err}
	}
}

func (v *View) loadPending() tea.Cmd {
	if v.registrationService == nil {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		subs, err := v.registrationService.Pending(ctx)
		return messages.PendingLoaded{Submissions: subs, Err: err}
	}
}

func (v *View) handleFIRLoaded(msg messages.FIRLoaded) {
	v.loading = false
	v.docText = ""
	if msg.Err != nil {
		v.fir = nil
		v.setError(msg.Err)
		return
	}
	v.err = nil
	v.fir = msg.FIR
	v.statusbar.Clear()
	v.statusbar.SetMessage(msg.FIR.ID)
}

func (v *View) handleDocumentLoaded(msg messages.DocumentTextLoaded) {
	v.loading = false
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	if v.fir == nil || msg.ID != v.fir.ID {
		return
	}
	v.err = nil
	v.docText = msg.Text
	v.document.SetContent(msg.Text)
	v.document.GotoTop()
	v.showDocs = true
	v.statusbar.Clear()
	v.statusbar.SetMessage(v.tr.T(domain.TextDocument))
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(v.errorText(err))
}

// errorText maps service errors to the portal's messages.
func (v *View) errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return v.tr.T(domain.TextInvalidFIRID)
	case errors.Is(err, domain.ErrNotFound):
		return v.tr.T(domain.TextFIRNotFound)
	case errors.Is(err, domain.ErrDocumentMissing):
		return "No document has been filed for this FIR yet"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "FIR service is unreachable, try again later"
	default:
		return err.Error()
	}
}

// View renders the tracker.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.tr.T(domain.TextTitle)))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.showDocs:
		b.WriteString(v.styles.Subtitle.Render(v.tr.T(domain.TextDocument)))
		b.WriteString("\n")
		b.WriteString(v.document.View())
	case v.fir != nil:
		b.WriteString(v.renderFIR())
	default:
		b.WriteString(v.styles.Muted.Render(v.tr.T(domain.TextPlaceholder)))
	}
	b.WriteString("\n\n")

	if v.pending > 0 {
		b.WriteString(v.styles.Warning.Render(
			fmt.Sprintf("%d report(s) waiting to be sent. Run \"nyaya register pending\".", v.pending)))
		b.WriteString("\n")
	}
	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderFIR() string {
	f := v.fir
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(f.ID))
	b.WriteString("  ")
	b.WriteString(v.styles.Status(f.Status).Render(f.Status.Label(v.lang)))
	b.WriteString("\n")
	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(v.styles.Normal.Render(value))
		b.WriteString("\n")
	}
	row("Station", f.Station)
	row("Date", f.Date)
	row("Type", f.Type)
	row("Description", f.Description)
	row("Document", f.URL)
	return v.styles.Border.Padding(0, 1).Render(strings.TrimRight(b.String(), "\n"))
}

// SetLanguage switches labels to lang.
func (v *View) SetLanguage(lang domain.Language) {
	v.lang = lang
	v.tr = domain.Translations(lang)
	v.input.SetPlaceholder(v.tr.T(domain.TextPlaceholder))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.document.Width = width
	v.document.Height = max(height-10, 3)
}

// FIR returns the FIR on display, or nil.
func (v *View) FIR() *domain.FIR {
	return v.fir
}

// DocumentText returns the loaded document text.
func (v *View) DocumentText() string {
	return v.docText
}

// Pending returns the number of unsent reports.
func (v *View) Pending() int {
	return v.pending
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
