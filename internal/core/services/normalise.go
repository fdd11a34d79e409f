package services

import (
	"strconv"
	"strings"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// Normalise groups raw sections into chapters by their chapter heading.
// Chapters appear in first-seen order and sections keep dataset order.
// Sections without a heading go under domain.UncategorizedChapter.
// Every raw entry lands in exactly one chapter.
func Normalise(raw []domain.RawSection) []domain.Chapter {
	chapters := make([]domain.Chapter, 0)
	index := make(map[string]int)

	for i := range raw {
		title := chapterLabel(&raw[i])
		pos, ok := index[title]
		if !ok {
			pos = len(chapters)
			index[title] = pos
			chapters = append(chapters, domain.Chapter{Title: title})
		}
		chapters[pos].Sections = append(chapters[pos].Sections, toSection(&raw[i]))
	}

	return chapters
}

func chapterLabel(r *domain.RawSection) string {
	if label := strings.TrimSpace(r.Chapter); label != "" {
		return label
	}
	return domain.UncategorizedChapter
}

// toSection renders the section number and merges title and description
// so both take part in matching.
func toSection(r *domain.RawSection) domain.Section {
	title := strings.TrimSpace(r.Title)
	desc := strings.TrimSpace(r.Description)

	var text string
	switch {
	case title == "":
		text = desc
	case desc == "":
		text = title
	default:
		text = title + ": " + desc
	}

	return domain.Section{
		Number:      strconv.Itoa(r.Number),
		Description: text,
	}
}
