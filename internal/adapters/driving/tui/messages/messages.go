// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewLegal is the IPC/CPC reference with live filtering.
	ViewLegal
	// ViewTracker looks up FIR status.
	ViewTracker
	// ViewChat is the legal assistant.
	ViewChat
	// ViewSettings edits preferences.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewLegal:
		return "legal"
	case ViewTracker:
		return "tracker"
	case ViewChat:
		return "chat"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// LegalFiltered carries a filtered outline back to the legal view.
// Kind and Query identify the request so stale results can be dropped.
type LegalFiltered struct {
	Kind     domain.DatasetKind
	Query    string
	Result   *domain.SearchResult
	Expanded []string
	Err      error
}

// FIRLoaded carries the result of a tracker lookup.
type FIRLoaded struct {
	ID  string
	FIR *domain.FIR
	Err error
}

// DocumentTextLoaded carries the extracted text of a FIR document.
type DocumentTextLoaded struct {
	ID   string
	Text string
	Err  error
}

// PendingLoaded carries the registration outbox.
type PendingLoaded struct {
	Submissions []domain.Submission
	Err         error
}

// ChatUpdated carries the conversation after an event.
type ChatUpdated struct {
	Conversation domain.Conversation
	Err          error
}

// PreferencesChanged signals preferences changed outside the settings view.
type PreferencesChanged struct {
	Preferences domain.Preferences
}

// PreferencesSaved signals the settings view persisted preferences.
type PreferencesSaved struct {
	Preferences domain.Preferences
	Err         error
}
