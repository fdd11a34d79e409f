// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nyayvidhi/nyaya/internal/adapters/driving/tui/styles"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// row is one visible line: a chapter header or a section under it.
type row struct {
	chapter int
	section int // -1 for the chapter header
}

// Outline displays chapters as collapsible groups of sections.
type Outline struct {
	chapters []domain.ChapterMatch
	expanded map[string]bool
	rows     []row
	selected int
	styles   *styles.Styles
	empty    string
	width    int
	height   int
}

// NewOutline creates an empty outline.
func NewOutline(s *styles.Styles) *Outline {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &Outline{
		expanded: make(map[string]bool),
		styles:   s,
		empty:    "No sections found",
		width:    80,
		height:   10,
	}
}

// Init initialises the outline.
func (o *Outline) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (o *Outline) Update(msg tea.Msg) (*Outline, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			o.MoveUp()
		case tea.KeyDown:
			o.MoveDown()
		case tea.KeyEnter:
			o.Toggle()
		}
	}
	return o, nil
}

// SetResult replaces the chapters and opens exactly the chapters in
// expanded. The cursor stays on the same chapter when it survives.
func (o *Outline) SetResult(result *domain.SearchResult, expanded []string) {
	current := o.selectedTitle()

	o.chapters = nil
	if result != nil {
		o.chapters = result.Chapters
	}
	o.expanded = make(map[string]bool, len(expanded))
	for _, title := range expanded {
		o.expanded[title] = true
	}
	o.rebuild()

	o.selected = 0
	for i, r := range o.rows {
		if r.section < 0 && o.chapters[r.chapter].Title == current {
			o.selected = i
			break
		}
	}
}

// SetEmptyText sets the message shown when there are no chapters.
func (o *Outline) SetEmptyText(text string) {
	o.empty = text
}

// Toggle opens or closes the chapter under the cursor, or the chapter
// of the section under the cursor.
func (o *Outline) Toggle() {
	if len(o.rows) == 0 {
		return
	}
	r := o.rows[o.selected]
	title := o.chapters[r.chapter].Title
	o.expanded[title] = !o.expanded[title]
	o.rebuild()
	for i, candidate := range o.rows {
		if candidate.chapter == r.chapter && candidate.section < 0 {
			o.selected = i
			break
		}
	}
}

// ToggleAll expands every chapter, or collapses all when all are open.
func (o *Outline) ToggleAll() {
	open := !o.AllExpanded()
	for _, ch := range o.chapters {
		o.expanded[ch.Title] = open
	}
	current := o.selectedTitle()
	o.rebuild()
	o.selected = 0
	for i, r := range o.rows {
		if r.section < 0 && o.chapters[r.chapter].Title == current {
			o.selected = i
			break
		}
	}
}

// AllExpanded reports whether every chapter is open.
func (o *Outline) AllExpanded() bool {
	for _, ch := range o.chapters {
		if !o.expanded[ch.Title] {
			return false
		}
	}
	return len(o.chapters) > 0
}

// IsExpanded reports whether the chapter with title is open.
func (o *Outline) IsExpanded(title string) bool {
	return o.expanded[title]
}

// MoveUp moves selection up.
func (o *Outline) MoveUp() {
	if o.selected > 0 {
		o.selected--
	}
}

// MoveDown moves selection down.
func (o *Outline) MoveDown() {
	if o.selected < len(o.rows)-1 {
		o.selected++
	}
}

// Selected returns the index of the selected row.
func (o *Outline) Selected() int {
	return o.selected
}

// SelectedSection returns the section under the cursor, or nil on a
// chapter header.
func (o *Outline) SelectedSection() *domain.SectionMatch {
	if len(o.rows) == 0 {
		return nil
	}
	r := o.rows[o.selected]
	if r.section < 0 {
		return nil
	}
	return &o.chapters[r.chapter].Sections[r.section]
}

// RowCount returns the number of visible rows.
func (o *Outline) RowCount() int {
	return len(o.rows)
}

// IsEmpty returns whether there are no chapters.
func (o *Outline) IsEmpty() bool {
	return len(o.chapters) == 0
}

// SetDimensions sets the component dimensions.
func (o *Outline) SetDimensions(width, height int) {
	o.width = width
	o.height = height
}

// View renders the visible window of rows.
func (o *Outline) View() string {
	if len(o.chapters) == 0 {
		return o.styles.Muted.Render(o.empty)
	}

	visible := max(o.height, 1)
	start := 0
	if o.selected >= visible {
		start = o.selected - visible + 1
	}
	end := min(start+visible, len(o.rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, o.renderRow(i))
	}
	return strings.Join(lines, "\n")
}

func (o *Outline) renderRow(i int) string {
	r := o.rows[i]
	ch := &o.chapters[r.chapter]
	cursor := "  "
	if i == o.selected {
		cursor = "> "
	}

	if r.section < 0 {
		marker := "▸"
		if o.expanded[ch.Title] {
			marker = "▾"
		}
		title := o.styles.RenderSpans(titleSpans(ch), o.styles.Subtitle)
		count := o.styles.Muted.Render(fmt.Sprintf(" (%d)", len(ch.Sections)))
		if i == o.selected {
			return o.styles.Selected.Render(cursor+marker+" ") + title + count
		}
		return cursor + marker + " " + title + count
	}

	s := &ch.Sections[r.section]
	number := o.styles.RenderSpans(numberSpans(s), o.styles.Title)
	desc := o.styles.RenderSpans(descriptionSpans(s), o.styles.Normal)
	if i == o.selected {
		cursor = o.styles.Selected.Render(cursor)
	}
	return fmt.Sprintf("%s    %s  %s", cursor, number, desc)
}

func (o *Outline) rebuild() {
	o.rows = o.rows[:0]
	for ci, ch := range o.chapters {
		o.rows = append(o.rows, row{chapter: ci, section: -1})
		if !o.expanded[ch.Title] {
			continue
		}
		for si := range ch.Sections {
			o.rows = append(o.rows, row{chapter: ci, section: si})
		}
	}
	if o.selected >= len(o.rows) {
		o.selected = max(len(o.rows)-1, 0)
	}
}

func (o *Outline) selectedTitle() string {
	if len(o.rows) == 0 || o.selected >= len(o.rows) {
		return ""
	}
	return o.chapters[o.rows[o.selected].chapter].Title
}

// Spans are absent on an unfiltered outline; fall back to plain text.

func titleSpans(ch *domain.ChapterMatch) []domain.Span {
	if len(ch.TitleSpans) > 0 {
		return ch.TitleSpans
	}
	return []domain.Span{{Text: ch.Title, End: len(ch.Title)}}
}

func numberSpans(s *domain.SectionMatch) []domain.Span {
	if len(s.NumberSpans) > 0 {
		return s.NumberSpans
	}
	return []domain.Span{{Text: s.Section.Number, End: len(s.Section.Number)}}
}

func descriptionSpans(s *domain.SectionMatch) []domain.Span {
	if len(s.DescriptionSpans) > 0 {
		return s.DescriptionSpans
	}
	return []domain.Span{{Text: s.Section.Description, End: len(s.Section.Description)}}
}
