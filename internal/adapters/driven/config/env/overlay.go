// Package env layers NYAYA_* environment variables over a config store.
//
// Overrides are read once at construction. They win over stored values
// but are never written back, so exporting NYAYA_BACKEND_URL for one
// session leaves config.toml untouched.
package env

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// Ensure Store implements the interfaces.
var (
	_ driven.ConfigStore   = (*Store)(nil)
	_ driven.ConfigWatcher = (*Store)(nil)
)

// vars lists the recognised variables. Nil means unset.
type vars struct {
	BackendURL     *string `env:"NYAYA_BACKEND_URL"`
	BackendTimeout *int    `env:"NYAYA_BACKEND_TIMEOUT"`
	BackendRate    *int    `env:"NYAYA_BACKEND_RATE"`
	Language       *string `env:"NYAYA_LANGUAGE"`
	Dark           *bool   `env:"NYAYA_DARK"`
	Colorblind     *string `env:"NYAYA_COLORBLIND"`
	DataDir        *string `env:"NYAYA_DATA_DIR"`
}

func (v vars) overrides() map[string]any {
	out := make(map[string]any)
	if v.BackendURL != nil {
		out["backend.url"] = *v.BackendURL
	}
	if v.BackendTimeout != nil {
		out["backend.timeout_seconds"] = *v.BackendTimeout
	}
	if v.BackendRate != nil {
		out["backend.rate_per_second"] = *v.BackendRate
	}
	if v.Language != nil {
		out["ui.language"] = *v.Language
	}
	if v.Dark != nil {
		out["ui.dark"] = *v.Dark
	}
	if v.Colorblind != nil {
		out["ui.colorblind"] = *v.Colorblind
	}
	if v.DataDir != nil {
		out["data.dir"] = *v.DataDir
	}
	return out
}

// Store is a driven.ConfigStore that consults environment overrides
// before the wrapped store.
type Store struct {
	base      driven.ConfigStore
	overrides map[string]any
}

// LoadDotEnv loads variables from a .env file without replacing ones
// already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	logger.Debug("loaded environment from %s", path)
	return nil
}

// New wraps base with overrides parsed from environ. A nil environ
// reads the process environment.
func New(base driven.ConfigStore, environ map[string]string) (*Store, error) {
	var v vars
	if err := env.ParseWithOptions(&v, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	s := &Store{base: base, overrides: v.overrides()}
	for _, k := range s.overriddenKeys() {
		logger.Debug("config %s overridden by environment", k)
	}
	return s, nil
}

// Overridden reports whether key is currently supplied by the environment.
func (s *Store) Overridden(key string) bool {
	_, ok := s.overrides[key]
	return ok
}

// Get retrieves a configuration value, preferring the environment.
func (s *Store) Get(key string) (any, bool) {
	if v, ok := s.overrides[key]; ok {
		return v, true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *Store) GetString(key string) string {
	if v, ok := s.overrides[key]; ok {
		str, _ := v.(string)
		return str
	}
	return s.base.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (s *Store) GetInt(key string) int {
	if v, ok := s.overrides[key]; ok {
		n, _ := v.(int)
		return n
	}
	return s.base.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.overrides[key]; ok {
		b, _ := v.(bool)
		return b
	}
	return s.base.GetBool(key)
}

// Set persists to the wrapped store. The environment still wins on read.
func (s *Store) Set(key string, value any) error {
	if s.Overridden(key) {
		logger.Warn("%s is set by the environment; saved value applies once it is unset", key)
	}
	return s.base.Set(key, value)
}

// Keys returns stored and overridden keys, sorted and de-duplicated.
func (s *Store) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, k := range append(s.base.Keys(), s.overriddenKeys()...) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Save persists the wrapped store.
func (s *Store) Save() error { return s.base.Save() }

// Load reloads the wrapped store.
func (s *Store) Load() error { return s.base.Load() }

// Path returns the wrapped store's path.
func (s *Store) Path() string { return s.base.Path() }

// Watch delegates to the wrapped store when it can watch, otherwise it
// blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, onChange func()) error {
	if w, ok := s.base.(driven.ConfigWatcher); ok {
		return w.Watch(ctx, onChange)
	}
	<-ctx.Done()
	return nil
}

func (s *Store) overriddenKeys() []string {
	keys := make([]string, 0, len(s.overrides))
	for k := range s.overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
