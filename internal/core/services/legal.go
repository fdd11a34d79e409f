package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// Ensure LegalService implements the interface.
var _ driving.LegalService = (*LegalService)(nil)

// legalTree is one loaded and normalised dataset.
type legalTree struct {
	raw      []domain.RawSection
	chapters []domain.Chapter
	byNumber map[int]int
}

// LegalService serves the IPC and CPC outlines.
// Each dataset is loaded and normalised at most once.
type LegalService struct {
	datasets driven.DatasetProvider

	mu    sync.RWMutex
	trees map[domain.DatasetKind]*legalTree
}

// NewLegalService creates a new legal reference service.
func NewLegalService(datasets driven.DatasetProvider) *LegalService {
	return &LegalService{
		datasets: datasets,
		trees:    make(map[domain.DatasetKind]*legalTree),
	}
}

// Preload loads every dataset concurrently.
func (s *LegalService) Preload(ctx context.Context) error {
	logger.Section("Dataset Preload")
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range domain.DatasetKinds() {
		g.Go(func() error {
			_, err := s.tree(gctx, kind)
			return err
		})
	}
	return g.Wait()
}

// Chapters returns the normalised outline of a legal code.
func (s *LegalService) Chapters(ctx context.Context, kind domain.DatasetKind) ([]domain.Chapter, error) {
	tree, err := s.tree(ctx, kind)
	if err != nil {
		return nil, err
	}
	return cloneChapters(tree.chapters), nil
}

// Search filters the outline and attaches highlight spans to every
// displayed field of the surviving chapters and sections.
func (s *LegalService) Search(
	ctx context.Context, kind domain.DatasetKind, query string,
) (*domain.SearchResult, error) {
	tree, err := s.tree(ctx, kind)
	if err != nil {
		return nil, err
	}

	filtered := Filter(tree.chapters, query)
	result := &domain.SearchResult{
		Kind:     kind,
		Query:    query,
		Chapters: make([]domain.ChapterMatch, 0, len(filtered)),
	}
	for i := range filtered {
		ch := domain.ChapterMatch{
			Title:      filtered[i].Title,
			TitleSpans: Highlight(filtered[i].Title, query),
			Sections:   make([]domain.SectionMatch, 0, len(filtered[i].Sections)),
		}
		for _, sec := range filtered[i].Sections {
			ch.Sections = append(ch.Sections, domain.SectionMatch{
				Section:          sec,
				NumberSpans:      Highlight(sec.Number, query),
				DescriptionSpans: Highlight(sec.Description, query),
			})
		}
		result.Chapters = append(result.Chapters, ch)
	}

	logger.Debug("%s search %q: %d sections in %d chapters",
		kind, query, result.Count(), len(result.Chapters))
	return result, nil
}

// Section looks up one section by its number.
func (s *LegalService) Section(
	ctx context.Context, kind domain.DatasetKind, number string,
) (*domain.RawSection, error) {
	tree, err := s.tree(ctx, kind)
	if err != nil {
		return nil, err
	}

	// Only the canonical decimal form names a section: "01" and "+1" do not.
	trimmed := strings.TrimSpace(number)
	n, err := strconv.Atoi(trimmed)
	if err != nil || strconv.Itoa(n) != trimmed {
		return nil, fmt.Errorf("%s section %q: %w", kind, number, domain.ErrNotFound)
	}
	pos, ok := tree.byNumber[n]
	if !ok {
		return nil, fmt.Errorf("%s section %d: %w", kind, n, domain.ErrNotFound)
	}
	sec := tree.raw[pos]
	return &sec, nil
}

// Highlight splits text into plain and matched spans for query.
func (s *LegalService) Highlight(text, query string) []domain.Span {
	return Highlight(text, query)
}

// ExpandedTitles returns every surviving chapter title while the query
// is non-empty, and none otherwise. A whitespace-only query counts as
// non-empty and expands everything.
func (s *LegalService) ExpandedTitles(result *domain.SearchResult) []string {
	if result == nil || result.Query == "" {
		return nil
	}
	titles := make([]string, 0, len(result.Chapters))
	for i := range result.Chapters {
		titles = append(titles, result.Chapters[i].Title)
	}
	return titles
}

func (s *LegalService) tree(ctx context.Context, kind domain.DatasetKind) (*legalTree, error) {
	s.mu.RLock()
	tree, ok := s.trees[kind]
	s.mu.RUnlock()
	if ok {
		return tree, nil
	}

	raw, err := s.datasets.Load(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", kind, err)
	}

	tree = &legalTree{
		raw:      raw,
		chapters: Normalise(raw),
		byNumber: make(map[int]int, len(raw)),
	}
	for i := range raw {
		if _, dup := tree.byNumber[raw[i].Number]; dup {
			logger.Warn("%s dataset repeats section %d, keeping the first", kind, raw[i].Number)
			continue
		}
		tree.byNumber[raw[i].Number] = i
	}
	logger.Info("%s dataset ready: %d sections in %d chapters", kind, len(raw), len(tree.chapters))

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.trees[kind]; ok {
		return existing, nil
	}
	s.trees[kind] = tree
	return tree, nil
}

func cloneChapters(in []domain.Chapter) []domain.Chapter {
	out := make([]domain.Chapter, len(in))
	for i := range in {
		out[i] = domain.Chapter{
			Title:    in[i].Title,
			Sections: append([]domain.Section(nil), in[i].Sections...),
		}
	}
	return out
}
