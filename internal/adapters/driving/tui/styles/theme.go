// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the background colour.
	Background lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Highlight is the background of matched text.
	Highlight lipgloss.Color
}

// DarkTheme returns the dark colour theme.
func DarkTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#F59E0B"), // Saffron
		Secondary:  lipgloss.Color("#38BDF8"), // Sky
		Background: lipgloss.Color("#111827"),
		Foreground: lipgloss.Color("#E5E7EB"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#4ADE80"),
		Warning:    lipgloss.Color("#FACC15"),
		Error:      lipgloss.Color("#F87171"),
		Border:     lipgloss.Color("#374151"),
		Highlight:  lipgloss.Color("#854D0E"),
	}
}

// LightTheme returns the light colour theme.
func LightTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#B45309"),
		Secondary:  lipgloss.Color("#0369A1"),
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#15803D"),
		Warning:    lipgloss.Color("#A16207"),
		Error:      lipgloss.Color("#B91C1C"),
		Border:     lipgloss.Color("#D1D5DB"),
		Highlight:  lipgloss.Color("#FEF08A"),
	}
}

// DefaultTheme returns the theme for default preferences.
func DefaultTheme() *Theme {
	return ThemeFor(domain.DefaultPreferences())
}

// ThemeFor returns the palette for a preferences snapshot.
func ThemeFor(p domain.Preferences) *Theme {
	t := LightTheme()
	if p.Dark {
		t = DarkTheme()
	}
	return t.ForVision(p.Colorblind)
}

// ForVision returns a copy with status colours replaced by ones that stay
// distinguishable under the given colour vision deficiency.
func (t *Theme) ForVision(mode domain.ColorblindMode) *Theme {
	out := *t
	switch mode {
	case domain.ColorblindProtanopia, domain.ColorblindDeuteranopia:
		// Red and green collapse; use blue against orange.
		out.Success = lipgloss.Color("#0072B2")
		out.Error = lipgloss.Color("#D55E00")
		out.Warning = lipgloss.Color("#E69F00")
	case domain.ColorblindTritanopia:
		// Blue and yellow collapse; use teal against magenta.
		out.Success = lipgloss.Color("#009E73")
		out.Error = lipgloss.Color("#CC79A7")
		out.Warning = lipgloss.Color("#D55E00")
		out.Secondary = lipgloss.Color("#009E73")
	case domain.ColorblindNone:
	}
	return &out
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Subtitle style for secondary headers.
	Subtitle lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Warning style for warning messages.
	Warning lipgloss.Style

	// Match style for text matching the filter.
	Match lipgloss.Style

	// Tab and ActiveTab style the code switcher.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Bot and User style chat speakers.
	Bot  lipgloss.Style
	User lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Match: lipgloss.NewStyle().
			Bold(true).
			Background(theme.Highlight),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Underline(true).
			Padding(0, 2),

		Bot: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		User: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// ForPreferences returns styles matching a preferences snapshot.
func ForPreferences(p domain.Preferences) *Styles {
	return NewStyles(ThemeFor(p))
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Status returns the badge style for a FIR status.
func (s *Styles) Status(status domain.FIRStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch status {
	case domain.FIRPending:
		return base.Foreground(s.theme.Warning)
	case domain.FIRInProgress:
		return base.Foreground(s.theme.Secondary)
	case domain.FIRResolved:
		return base.Foreground(s.theme.Success)
	case domain.FIRClosed:
		return base.Foreground(s.theme.Muted)
	default:
		return base.Foreground(s.theme.Foreground)
	}
}

// RenderSpans joins spans, styling matched runs with Match.
func (s *Styles) RenderSpans(spans []domain.Span, plain lipgloss.Style) string {
	var b strings.Builder
	for _, sp := range spans {
		if sp.Matched {
			b.WriteString(s.Match.Render(sp.Text))
		} else {
			b.WriteString(plain.Render(sp.Text))
		}
	}
	return b.String()
}
