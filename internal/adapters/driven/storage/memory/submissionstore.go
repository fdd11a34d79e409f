package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
)

// Ensure SubmissionStore implements the interface.
var _ driven.SubmissionStore = (*SubmissionStore)(nil)

// SubmissionStore is an in-memory registration outbox.
type SubmissionStore struct {
	mu   sync.RWMutex
	subs map[string]domain.Submission
}

// NewSubmissionStore creates an empty in-memory outbox.
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{subs: make(map[string]domain.Submission)}
}

// Save stores or updates a submission.
func (s *SubmissionStore) Save(_ context.Context, sub domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.ID] = cloneSubmission(sub)
	return nil
}

// Get retrieves a submission by ID.
func (s *SubmissionStore) Get(_ context.Context, id string) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneSubmission(sub)
	return &out, nil
}

// ListPending returns undelivered submissions, oldest first.
func (s *SubmissionStore) ListPending(_ context.Context) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Submission, 0)
	for _, sub := range s.subs {
		if sub.IsPending() {
			result = append(result, cloneSubmission(sub))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// cloneSubmission copies the attachment slices so callers cannot alias
// stored state.
func cloneSubmission(sub domain.Submission) domain.Submission {
	sub.Registration.VoiceSamples = append([]string(nil), sub.Registration.VoiceSamples...)
	sub.Registration.Documents = append([]string(nil), sub.Registration.Documents...)
	return sub
}
