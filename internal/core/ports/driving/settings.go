package driving

import (
	"context"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// SettingsService manages user preferences and connection settings.
type SettingsService interface {
	// Preferences returns the current preferences snapshot.
	Preferences() domain.Preferences

	// SavePreferences persists a preferences snapshot.
	SavePreferences(p domain.Preferences) error

	// Backend returns the backend connection settings.
	Backend() domain.BackendSettings

	// DataDir returns the directory holding local data.
	DataDir() string

	// Set validates and stores a single setting by key.
	Set(key, value string) error

	// All returns every known setting as display strings, keyed by name.
	All() map[string]string

	// Keys returns the settable keys in display order.
	Keys() []string

	// Watch calls onChange with fresh preferences whenever the underlying
	// configuration changes outside this process. It blocks until ctx is
	// done and returns nil at once when the store cannot be watched.
	Watch(ctx context.Context, onChange func(domain.Preferences)) error
}
