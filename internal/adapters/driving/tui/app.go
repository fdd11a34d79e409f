package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/keymap"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/messages"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/views/chat"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/views/legal"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/views/menu"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/views/settings"
	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/views/tracker"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles is shared by every view and updated in place when the
	// theme changes.
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	prefs domain.Preferences

	menuView     *menu.View
	legalView    *legal.View
	trackerView  *tracker.View
	chatView     *chat.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	prefs := domain.DefaultPreferences()
	if ports.Settings != nil {
		prefs = ports.Settings.Preferences()
	}

	s := styles.ForPreferences(prefs)
	km := keymap.DefaultKeyMap()

	h := help.New()
	h.ShowAll = true

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         h,
		menuView:     menu.NewView(s),
		legalView:    legal.NewView(s, km, ports.Legal),
		trackerView:  tracker.NewView(s, km, ports.FIR, ports.Registration),
		chatView:     chat.NewView(s, km, ports.Chat),
		settingsView: settings.NewView(s, km, ports.Settings),
		currentView:  messages.ViewMenu,
	}
	a.applyPreferences(prefs)
	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.legalView.WithContext(ctx)
	a.trackerView.WithContext(ctx)
	a.chatView.WithContext(ctx)
	return a
}

// WatchSettings forwards preference changes made outside the TUI, such as
// "nyaya settings set" in another terminal, to the running program. It
// returns immediately; watching stops when the app context is cancelled.
func (a *App) WatchSettings(p *tea.Program) {
	if a.ports.Settings == nil || p == nil {
		return
	}
	ctx := a.ctx
	go func() {
		err := a.ports.Settings.Watch(ctx, func(prefs domain.Preferences) {
			p.Send(messages.PreferencesChanged{Preferences: prefs})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("settings watch stopped: %v", err)
		}
	}()
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("nyaya - Legal Reference and FIR Tracker"),
		a.legalView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.LegalFiltered:
		a.legalView, cmd = a.legalView.Update(msg)
		a.err = msg.Err
		return a, cmd

	case messages.FIRLoaded, messages.DocumentTextLoaded, messages.PendingLoaded:
		a.trackerView, cmd = a.trackerView.Update(msg)
		return a, cmd

	case messages.ChatUpdated:
		a.chatView, cmd = a.chatView.Update(msg)
		a.err = msg.Err
		return a, cmd

	case messages.PreferencesSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}
		a.applyPreferences(msg.Preferences)
		return a, cmd

	case messages.PreferencesChanged:
		logger.Debug("preferences changed: %+v", msg.Preferences)
		a.settingsView, cmd = a.settingsView.Update(msg)
		a.applyPreferences(msg.Preferences)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewTracker {
			a.trackerView, cmd = a.trackerView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		if keymap.Matches(msg.String(), a.keymap.Help) {
			a.currentView = messages.ViewHelp
			return a, nil
		}
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewLegal:
		a.legalView, cmd = a.legalView.Update(msg)
	case messages.ViewTracker:
		a.trackerView, cmd = a.trackerView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc || keymap.Matches(msg.String(), a.keymap.Quit) {
			a.currentView = messages.ViewMenu
		}
	}
	return a, cmd
}

// forward passes any other message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewLegal:
		a.legalView, cmd = a.legalView.Update(msg)
	case messages.ViewTracker:
		a.trackerView, cmd = a.trackerView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help is static.
	}
	return a, cmd
}

// switchTo activates a view and returns its initial command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.err = nil
	switch view {
	case messages.ViewLegal:
		return a.legalView.Init()
	case messages.ViewTracker:
		a.trackerView.Reset()
		return a.trackerView.Init()
	case messages.ViewChat:
		return a.chatView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
		// Nothing to load.
	}
	return nil
}

// applyPreferences restyles and relabels every view.
func (a *App) applyPreferences(p domain.Preferences) {
	p = p.Normalised()
	a.prefs = p
	*a.styles = *styles.ForPreferences(p)
	a.menuView.SetLanguage(p.Language)
	a.legalView.SetLanguage(p.Language)
	a.trackerView.SetLanguage(p.Language)
	a.chatView.SetLanguage(p.Language)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewLegal:
		return a.legalView.View()
	case messages.ViewTracker:
		return a.trackerView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.help.View(a.keymap))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Muted.Render("Typing in the legal reference filters sections as you type."))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("In the tracker, enter a FIR number and press enter."))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	a.WatchSettings(p)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Preferences returns the preferences currently applied.
func (a *App) Preferences() domain.Preferences {
	return a.prefs
}

// Styles returns the shared styles.
func (a *App) Styles() *styles.Styles {
	return a.styles
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.menuView.SetDimensions(width, height)
	a.legalView.SetDimensions(width, height)
	a.trackerView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
