package domain

import "strings"

// Span is a contiguous run of a text field, tagged as plain or matched.
// Start and End are byte offsets into the original text.
type Span struct {
	// Text is the exact substring of the original text.
	Text string `json:"text"`

	// Matched marks runs that should be visually emphasised.
	Matched bool `json:"matched"`

	// Start is the byte offset of the first character.
	Start int `json:"start"`

	// End is the byte offset one past the last character.
	End int `json:"end"`
}

// JoinSpans reassembles the text a span sequence was computed from.
func JoinSpans(spans []Span) string {
	var b strings.Builder
	for i := range spans {
		b.WriteString(spans[i].Text)
	}
	return b.String()
}

// SectionMatch is a section that survived filtering, with highlight spans
// for each displayed field.
type SectionMatch struct {
	Section          Section `json:"section"`
	NumberSpans      []Span  `json:"number_spans"`
	DescriptionSpans []Span  `json:"description_spans"`
}

// ChapterMatch is a chapter with at least one surviving section.
type ChapterMatch struct {
	Title      string         `json:"title"`
	TitleSpans []Span         `json:"title_spans"`
	Sections   []SectionMatch `json:"sections"`
}

// SearchResult is the derived outcome of one query against one dataset.
// It is recomputed from scratch for every query.
type SearchResult struct {
	// Kind is the dataset that was searched.
	Kind DatasetKind `json:"kind"`

	// Query is the raw query as typed.
	Query string `json:"query"`

	// Chapters are the surviving chapters in dataset order.
	Chapters []ChapterMatch `json:"chapters"`
}

// Count returns the number of matching sections.
func (r *SearchResult) Count() int {
	n := 0
	for i := range r.Chapters {
		n += len(r.Chapters[i].Sections)
	}
	return n
}

// IsEmpty reports whether nothing matched.
func (r *SearchResult) IsEmpty() bool {
	return len(r.Chapters) == 0
}
