package services

import (
	"strings"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// Filter returns the chapters and sections that match every term of query.
//
// A term matches a section when it occurs in the lower-cased
// "<number> <description>" text, or when it is all digits and occurs in the
// section number. Chapters left without sections are dropped. Order is
// preserved and the input is never modified. A blank query returns chapters
// unchanged.
func Filter(chapters []domain.Chapter, query string) []domain.Chapter {
	terms := Terms(query)
	if len(terms) == 0 {
		return chapters
	}

	out := make([]domain.Chapter, 0)
	for i := range chapters {
		var kept []domain.Section
		for j := range chapters[i].Sections {
			if sectionMatches(&chapters[i].Sections[j], terms) {
				kept = append(kept, chapters[i].Sections[j])
			}
		}
		if len(kept) > 0 {
			out = append(out, domain.Chapter{Title: chapters[i].Title, Sections: kept})
		}
	}
	return out
}

func sectionMatches(s *domain.Section, terms []string) bool {
	combined := strings.ToLower(s.Number + " " + s.Description)
	for _, term := range terms {
		if strings.Contains(combined, term) {
			continue
		}
		if isDigits(term) && strings.Contains(s.Number, term) {
			continue
		}
		return false
	}
	return true
}
