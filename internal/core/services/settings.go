package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyLanguage       = "ui.language"
	KeyDark           = "ui.dark"
	KeyColorblind     = "ui.colorblind"
	KeyBackendURL     = "backend.url"
	KeyBackendTimeout = "backend.timeout_seconds"
	KeyBackendRate    = "backend.rate_per_second"
	KeyDataDir        = "data.dir"
)

// SettingsService manages preferences and connection settings on top of a
// config store. Invalid stored values read back as their defaults.
type SettingsService struct {
	configStore    driven.ConfigStore
	defaultDataDir string
}

// NewSettingsService creates a new settings service.
// defaultDataDir is reported for data.dir when the key is unset.
func NewSettingsService(configStore driven.ConfigStore, defaultDataDir string) *SettingsService {
	return &SettingsService{
		configStore:    configStore,
		defaultDataDir: defaultDataDir,
	}
}

// Preferences returns the current preferences snapshot.
func (s *SettingsService) Preferences() domain.Preferences {
	defaults := domain.DefaultPreferences()
	p := domain.Preferences{
		Language:   domain.Language(s.getString(KeyLanguage, defaults.Language.String())),
		Dark:       s.getBool(KeyDark, defaults.Dark),
		Colorblind: domain.ColorblindMode(s.getString(KeyColorblind, defaults.Colorblind.String())),
	}
	return p.Normalised()
}

// SavePreferences persists a preferences snapshot.
func (s *SettingsService) SavePreferences(p domain.Preferences) error {
	if !p.Language.IsValid() {
		return fmt.Errorf("%w: unknown language %q", domain.ErrInvalidInput, p.Language)
	}
	if !p.Colorblind.IsValid() {
		return fmt.Errorf("%w: unknown vision mode %q", domain.ErrInvalidInput, p.Colorblind)
	}

	if err := s.configStore.Set(KeyLanguage, p.Language.String()); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	if err := s.configStore.Set(KeyDark, p.Dark); err != nil {
		return fmt.Errorf("save dark mode: %w", err)
	}
	if err := s.configStore.Set(KeyColorblind, p.Colorblind.String()); err != nil {
		return fmt.Errorf("save vision mode: %w", err)
	}
	return nil
}

// Backend returns the backend connection settings.
func (s *SettingsService) Backend() domain.BackendSettings {
	defaults := domain.DefaultBackendSettings()
	return domain.BackendSettings{
		URL:           strings.TrimRight(s.getString(KeyBackendURL, defaults.URL), "/"),
		Timeout:       time.Duration(s.getInt(KeyBackendTimeout, int(defaults.Timeout/time.Second))) * time.Second,
		RatePerSecond: float64(s.getInt(KeyBackendRate, int(defaults.RatePerSecond))),
	}
}

// Watch reports preference changes made outside this process.
func (s *SettingsService) Watch(ctx context.Context, onChange func(domain.Preferences)) error {
	w, ok := s.configStore.(driven.ConfigWatcher)
	if !ok {
		return nil
	}
	return w.Watch(ctx, func() {
		onChange(s.Preferences())
	})
}

// DataDir returns the configured data directory.
func (s *SettingsService) DataDir() string {
	return s.getString(KeyDataDir, s.defaultDataDir)
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyLanguage, KeyDark, KeyColorblind,
		KeyBackendURL, KeyBackendTimeout, KeyBackendRate,
		KeyDataDir,
	}
}

// All returns every known setting as display strings.
func (s *SettingsService) All() map[string]string {
	p := s.Preferences()
	b := s.Backend()
	return map[string]string{
		KeyLanguage:       p.Language.String(),
		KeyDark:           strconv.FormatBool(p.Dark),
		KeyColorblind:     p.Colorblind.String(),
		KeyBackendURL:     b.URL,
		KeyBackendTimeout: strconv.Itoa(int(b.Timeout / time.Second)),
		KeyBackendRate:    strconv.Itoa(int(b.RatePerSecond)),
		KeyDataDir:        s.DataDir(),
	}
}

// Set validates and stores a single setting.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	stored, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func parseSetting(key, value string) (any, error) {
	switch key {
	case KeyLanguage:
		lang, err := domain.ParseLanguage(value)
		if err != nil {
			return nil, err
		}
		return lang.String(), nil
	case KeyColorblind:
		mode, err := domain.ParseColorblindMode(value)
		if err != nil {
			return nil, err
		}
		return mode.String(), nil
	case KeyDark:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case KeyBackendURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: %s must be an http(s) URL", domain.ErrInvalidInput, key)
		}
		return strings.TrimRight(value, "/"), nil
	case KeyBackendTimeout:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive number of seconds", domain.ErrInvalidInput, key)
		}
		return n, nil
	case KeyBackendRate:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s must be zero or more", domain.ErrInvalidInput, key)
		}
		return n, nil
	case KeyDataDir:
		if value == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
