package services

import (
	"unicode"
	"unicode/utf8"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

// Highlight splits text into alternating plain and matched spans.
//
// Every case-insensitive occurrence of every query term is marked. Overlapping
// or adjacent marks merge into one span, so no character is marked twice.
// Joining the span texts always reproduces text. A blank query yields one
// plain span covering the whole text.
func Highlight(text, query string) []domain.Span {
	terms := Terms(query)
	if len(terms) == 0 || text == "" {
		return []domain.Span{plainSpan(text)}
	}

	// Lower-case rune by rune so rune i of lower maps to offsets[i] in text.
	lower := make([]rune, 0, utf8.RuneCountInString(text))
	offsets := make([]int, 0, cap(lower)+1)
	for off, r := range text {
		lower = append(lower, unicode.ToLower(r))
		offsets = append(offsets, off)
	}
	offsets = append(offsets, len(text))

	marked := make([]bool, len(lower))
	for _, term := range terms {
		markOccurrences(lower, lowerRunes(term), marked)
	}

	return buildSpans(text, offsets, marked)
}

func plainSpan(text string) domain.Span {
	return domain.Span{Text: text, Start: 0, End: len(text)}
}

func lowerRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func markOccurrences(haystack, needle []rune, marked []bool) {
	n := len(needle)
	if n == 0 || n > len(haystack) {
		return
	}
	for i := 0; i+n <= len(haystack); i++ {
		if runesEqual(haystack[i:i+n], needle) {
			for k := i; k < i+n; k++ {
				marked[k] = true
			}
		}
	}
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func buildSpans(text string, offsets []int, marked []bool) []domain.Span {
	var spans []domain.Span
	start := 0
	for i := 1; i <= len(marked); i++ {
		if i < len(marked) && marked[i] == marked[start] {
			continue
		}
		from, to := offsets[start], offsets[i]
		spans = append(spans, domain.Span{
			Text:    text[from:to],
			Matched: marked[start],
			Start:   from,
			End:     to,
		})
		start = i
	}
	return spans
}
