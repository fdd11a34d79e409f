package domain

import (
	"fmt"
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// Language is a UI locale supported by the portal.
type Language string

// Supported languages.
const (
	LanguageEnglish   Language = "en"
	LanguageHindi     Language = "hi"
	LanguageBengali   Language = "bn"
	LanguageTelugu    Language = "te"
	LanguageTamil     Language = "ta"
	LanguageMarathi   Language = "mr"
	LanguageGujarati  Language = "gu"
	LanguagePunjabi   Language = "pa"
	DefaultLanguage            = LanguageEnglish
	defaultColorblind          = ColorblindNone
)

// Languages returns every supported language in menu order.
func Languages() []Language {
	return []Language{
		LanguageEnglish, LanguageHindi, LanguageBengali, LanguageTelugu,
		LanguageTamil, LanguageMarathi, LanguageGujarati, LanguagePunjabi,
	}
}

// ParseLanguage converts a language code to a Language.
func ParseLanguage(s string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(s)))
	if !lang.IsValid() {
		return "", fmt.Errorf("%w: unknown language %q", ErrInvalidInput, s)
	}
	return lang, nil
}

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	for _, known := range Languages() {
		if l == known {
			return true
		}
	}
	return false
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// NativeName returns the language name in its own script.
func (l Language) NativeName() string {
	switch l {
	case LanguageEnglish:
		return "English"
	case LanguageHindi:
		return "हिंदी"
	case LanguageBengali:
		return "বাংলা"
	case LanguageTelugu:
		return "తెలుగు"
	case LanguageTamil:
		return "தமிழ்"
	case LanguageMarathi:
		return "मराठी"
	case LanguageGujarati:
		return "ગુજરાતી"
	case LanguagePunjabi:
		return "ਪੰਜਾਬੀ"
	default:
		return unknownDescription
	}
}

// ColorblindMode selects a colour filter for users with colour vision deficiency.
type ColorblindMode string

// Available colourblind modes.
const (
	ColorblindNone         ColorblindMode = "none"
	ColorblindProtanopia   ColorblindMode = "protanopia"
	ColorblindDeuteranopia ColorblindMode = "deuteranopia"
	ColorblindTritanopia   ColorblindMode = "tritanopia"
)

// ColorblindModes returns every mode in menu order.
func ColorblindModes() []ColorblindMode {
	return []ColorblindMode{
		ColorblindNone, ColorblindProtanopia, ColorblindDeuteranopia, ColorblindTritanopia,
	}
}

// ParseColorblindMode converts a mode name to a ColorblindMode.
func ParseColorblindMode(s string) (ColorblindMode, error) {
	mode := ColorblindMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return "", fmt.Errorf("%w: unknown vision mode %q", ErrInvalidInput, s)
	}
	return mode, nil
}

// IsValid returns true if the mode is recognised.
func (m ColorblindMode) IsValid() bool {
	switch m {
	case ColorblindNone, ColorblindProtanopia, ColorblindDeuteranopia, ColorblindTritanopia:
		return true
	default:
		return false
	}
}

// String returns the mode name.
func (m ColorblindMode) String() string {
	return string(m)
}

// Description returns the label shown in the vision mode selector.
func (m ColorblindMode) Description() string {
	switch m {
	case ColorblindNone:
		return "Normal Vision"
	case ColorblindProtanopia:
		return "Protanopia"
	case ColorblindDeuteranopia:
		return "Deuteranopia"
	case ColorblindTritanopia:
		return "Tritanopia"
	default:
		return unknownDescription
	}
}

// CSSFilter returns the CSS filter the web portal applies for this mode.
func (m ColorblindMode) CSSFilter() string {
	switch m {
	case ColorblindProtanopia:
		return "saturate(0.5) sepia(0.2)"
	case ColorblindDeuteranopia:
		return "saturate(0.7) hue-rotate(-10deg)"
	case ColorblindTritanopia:
		return "saturate(0.8) hue-rotate(180deg)"
	case ColorblindNone:
		return "none"
	default:
		return "none"
	}
}

// Preferences is an immutable snapshot of the user-facing UI state.
// Updates return a new snapshot; the receiver is never modified.
type Preferences struct {
	Language   Language       `toml:"language" json:"language"`
	Dark       bool           `toml:"dark" json:"dark"`
	Colorblind ColorblindMode `toml:"colorblind" json:"colorblind"`
}

// DefaultPreferences returns the preferences used on first run.
func DefaultPreferences() Preferences {
	return Preferences{
		Language:   DefaultLanguage,
		Dark:       false,
		Colorblind: defaultColorblind,
	}
}

// WithLanguage returns a copy with the language replaced.
func (p Preferences) WithLanguage(lang Language) Preferences {
	p.Language = lang
	return p
}

// WithDark returns a copy with dark mode set.
func (p Preferences) WithDark(dark bool) Preferences {
	p.Dark = dark
	return p
}

// WithColorblind returns a copy with the vision mode replaced.
func (p Preferences) WithColorblind(mode ColorblindMode) Preferences {
	p.Colorblind = mode
	return p
}

// Normalised returns a copy with invalid fields reset to their defaults.
func (p Preferences) Normalised() Preferences {
	if !p.Language.IsValid() {
		p.Language = DefaultLanguage
	}
	if !p.Colorblind.IsValid() {
		p.Colorblind = defaultColorblind
	}
	return p
}

// Backend connection defaults.
const (
	DefaultBackendURL     = "http://127.0.0.1:8000"
	DefaultBackendTimeout = 10 * time.Second
	DefaultBackendRate    = 2.0
)

// BackendSettings configures the connection to the external FIR service.
type BackendSettings struct {
	// URL is the base URL, without a trailing slash.
	URL string

	// Timeout bounds each request.
	Timeout time.Duration

	// RatePerSecond caps outgoing requests. Zero disables the limit.
	RatePerSecond float64
}

// DefaultBackendSettings returns the settings used when none are configured.
func DefaultBackendSettings() BackendSettings {
	return BackendSettings{
		URL:           DefaultBackendURL,
		Timeout:       DefaultBackendTimeout,
		RatePerSecond: DefaultBackendRate,
	}
}
