// Package chat provides the legal assistant conversation view.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/input"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/components/status"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/keymap"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// chromeHeight is the number of lines outside the transcript.
const chromeHeight = 8

// View renders a conversation and lets the user pick options or type
// a section number.
type View struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	tr         domain.Translation
	input      *input.Field
	statusbar  *status.Bar
	transcript viewport.Model

	chatService driving.ChatService
	ctx         context.Context

	conv   domain.Conversation
	cursor int
	busy   bool
	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new chat view.
func NewView(s *styles.Styles, km *keymap.KeyMap, chatService driving.ChatService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	tr := domain.Translations(domain.DefaultLanguage)
	bar := status.NewBar(s, km)
	bar.SetHints([]key.Binding{km.Up, km.Down, km.Select, km.Back})

	v := &View{
		styles:      s,
		keymap:      km,
		tr:          tr,
		input:       input.NewField(s, "", tr.T(domain.TextChatPlaceholder)),
		statusbar:   bar,
		transcript:  viewport.New(80, 16),
		chatService: chatService,
		ctx:         context.Background(),
		width:       80,
		height:      24,
	}
	v.Restart(domain.DefaultLanguage)
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Restart begins a fresh conversation in lang.
func (v *View) Restart(lang domain.Language) {
	if v.chatService == nil {
		return
	}
	v.apply(v.chatService.Begin(lang))
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.ChatUpdated:
		v.busy = false
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.statusbar.Clear()
		v.apply(msg.Conversation)
		return v, nil
	}

	var cmd tea.Cmd
	v.transcript, cmd = v.transcript.Update(msg)
	return v, cmd
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case tea.KeyEnter:
		return v, v.submit()
	case tea.KeyUp:
		v.moveCursor(-1)
		return v, nil
	case tea.KeyDown:
		v.moveCursor(1)
		return v, nil
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		v.transcript, cmd = v.transcript.Update(msg)
		return v, cmd
	}

	if v.conv.AcceptsText() {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	s := msg.String()
	switch {
	case keymap.Matches(s, v.keymap.Up):
		v.moveCursor(-1)
	case keymap.Matches(s, v.keymap.Down):
		v.moveCursor(1)
	}
	return v, nil
}

func (v *View) moveCursor(delta int) {
	n := len(v.conv.Options())
	if n == 0 {
		return
	}
	v.cursor = (v.cursor + delta + n) % n
}

// submit sends the selected option or the typed text.
func (v *View) submit() tea.Cmd {
	if v.chatService == nil || v.busy {
		return nil
	}

	var event domain.ChatEvent
	if v.conv.AcceptsText() {
		text := strings.TrimSpace(v.input.Value())
		if text == "" {
			return nil
		}
		event = domain.EnterSection(text)
		v.input.Reset()
	} else {
		options := v.conv.Options()
		if len(options) == 0 {
			return nil
		}
		event = options[min(v.cursor, len(options)-1)].Event
	}

	v.busy = true
	v.statusbar.SetState(status.StateLoading)
	v.statusbar.SetMessage("")

	ctx, conv := v.ctx, v.conv
	return func() tea.Msg {
		next, err := v.chatService.Handle(ctx, conv, event)
		return messages.ChatUpdated{Conversation: next, Err: err}
	}
}

func (v *View) apply(conv domain.Conversation) {
	v.conv = conv
	v.cursor = 0
	v.tr = domain.Translations(conv.Language)
	v.input.SetPlaceholder(v.tr.T(domain.TextChatPlaceholder))
	if conv.AcceptsText() {
		v.input.Focus()
	} else {
		v.input.Blur()
	}
	v.transcript.SetContent(v.renderTranscript())
	v.transcript.GotoBottom()
}

func (v *View) renderTranscript() string {
	width := max(v.width-4, 20)
	var b strings.Builder
	for i, m := range v.conv.Transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		if m.Role == domain.RoleUser {
			line := v.styles.User.Render(m.Content)
			b.WriteString(v.styles.Normal.Width(width).AlignHorizontal(lipgloss.Right).Render(line))
			b.WriteString("\n")
			continue
		}
		b.WriteString(v.styles.Bot.Render(domain.AssistantName))
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Width(width).Render(m.Content))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *View) renderOptions() string {
	options := v.conv.Options()
	if len(options) == 0 {
		return ""
	}
	var b strings.Builder
	for i, opt := range options {
		label := fmt.Sprintf("[%s]", opt.Label)
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render("> " + label))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// View renders the chat.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.tr.T(domain.TextSupport)))
	b.WriteString("\n\n")
	b.WriteString(v.transcript.View())
	b.WriteString("\n\n")
	if v.conv.AcceptsText() {
		b.WriteString(v.input.View())
	} else {
		b.WriteString(v.renderOptions())
	}
	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetLanguage restarts an untouched conversation in lang. A conversation
// that has progressed keeps its own language.
func (v *View) SetLanguage(lang domain.Language) {
	if v.conv.State == domain.ChatWelcome && len(v.conv.Transcript) <= 1 {
		v.Restart(lang)
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
	v.transcript.Width = width
	v.transcript.Height = max(height-chromeHeight-len(v.conv.Options()), 3)
	v.transcript.SetContent(v.renderTranscript())
	v.transcript.GotoBottom()
}

// Conversation returns the current conversation snapshot.
func (v *View) Conversation() domain.Conversation {
	return v.conv
}

// Cursor returns the selected option index.
func (v *View) Cursor() int {
	return v.cursor
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
