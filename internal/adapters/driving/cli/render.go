package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

const wrapWidth = 80

var matchStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// renderMarkdown prints md through glamour, using plain output when
// stdout is not a terminal.
func renderMarkdown(cmd *cobra.Command, md string) error {
	style := styles.NoTTYStyle
	if isTerminal(cmd.OutOrStdout()) {
		style = styles.LightStyle
		if currentPreferences().Dark {
			style = styles.DarkStyle
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	cmd.Print(out)
	return nil
}

// renderSpans joins spans, emphasising matched runs.
func renderSpans(spans []domain.Span) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Matched {
			b.WriteString(matchStyle.Render(s.Text))
		} else {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// sectionMarkdown formats one section for display.
func sectionMarkdown(kind domain.DatasetKind, s *domain.RawSection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Section %d: %s\n\n", s.Number, s.Title)
	fmt.Fprintf(&b, "*%s", kind.Title())
	if s.Chapter != "" {
		fmt.Fprintf(&b, ", %s", s.Chapter)
	}
	b.WriteString("*\n\n")
	b.WriteString(s.Description)
	b.WriteString("\n")
	return b.String()
}

// outlineMarkdown formats a whole legal code.
func outlineMarkdown(kind domain.DatasetKind, chapters []domain.Chapter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", kind.Title())
	for _, ch := range chapters {
		fmt.Fprintf(&b, "\n## %s\n\n", ch.Title)
		for _, s := range ch.Sections {
			fmt.Fprintf(&b, "- **Section %s**: %s\n", s.Number, s.Description)
		}
	}
	return b.String()
}
