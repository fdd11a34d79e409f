package domain

import (
	"fmt"
	"strings"
)

// UncategorizedChapter is the chapter label used for sections whose
// dataset entry carries no chapter heading.
const UncategorizedChapter = "Uncategorized"

// DatasetKind identifies which legal code a dataset belongs to.
// Section numbers are unique only within one kind.
type DatasetKind string

// Available dataset kinds.
const (
	// DatasetIPC is the Indian Penal Code.
	DatasetIPC DatasetKind = "ipc"

	// DatasetCPC is the Code of Civil Procedure.
	DatasetCPC DatasetKind = "cpc"
)

// DatasetKinds returns every supported kind in display order.
func DatasetKinds() []DatasetKind {
	return []DatasetKind{DatasetIPC, DatasetCPC}
}

// ParseDatasetKind converts a user-supplied tag (e.g. a CLI flag) to a kind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDatasetKind(s string) (DatasetKind, error) {
	kind := DatasetKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("%w: unknown legal code %q (want ipc or cpc)", ErrInvalidInput, s)
	}
	return kind, nil
}

// IsValid returns true if the kind is recognised.
func (k DatasetKind) IsValid() bool {
	switch k {
	case DatasetIPC, DatasetCPC:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k DatasetKind) String() string {
	return string(k)
}

// Title returns the display name of the legal code.
func (k DatasetKind) Title() string {
	switch k {
	case DatasetIPC:
		return "Indian Penal Code (IPC)"
	case DatasetCPC:
		return "Code of Civil Procedure (CPC)"
	default:
		return "Unknown"
	}
}

// RawSection is one legal-code entry as authored in a static dataset.
// Datasets are loaded once and never mutated.
type RawSection struct {
	// Number is the section number, unique within one dataset.
	Number int `yaml:"section" json:"section"`

	// Title is the short heading of the section's subject.
	Title string `yaml:"title" json:"title"`

	// Description is the free-text explanation of the section.
	Description string `yaml:"description" json:"description"`

	// Chapter is the chapter heading the section is filed under.
	// May be empty, in which case the section is uncategorised.
	Chapter string `yaml:"chapter,omitempty" json:"chapter,omitempty"`
}

// Section is a display-ready section inside a Chapter.
type Section struct {
	// Number is the decimal section number.
	Number string `json:"number"`

	// Description combines the raw title and description.
	Description string `json:"description"`
}

// Chapter groups the sections that share a chapter label.
// Chapters are derived views with no identity beyond their title.
type Chapter struct {
	// Title is the chapter label, unique within one normalised tree.
	Title string `json:"title"`

	// Sections are in original dataset order.
	Sections []Section `json:"sections"`
}

// CountSections returns the total number of sections across chapters.
func CountSections(chapters []Chapter) int {
	n := 0
	for i := range chapters {
		n += len(chapters[i].Sections)
	}
	return n
}
