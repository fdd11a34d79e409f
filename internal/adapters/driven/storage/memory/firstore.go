package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
)

// Ensure FIRStore implements the interface.
var _ driven.FIRStore = (*FIRStore)(nil)

// FIRStore is an in-memory implementation of driven.FIRStore.
type FIRStore struct {
	mu   sync.RWMutex
	firs map[string]domain.FIR
}

// NewFIRStore creates an in-memory FIR store holding the given records.
func NewFIRStore(seed ...domain.FIR) *FIRStore {
	s := &FIRStore{firs: make(map[string]domain.FIR, len(seed))}
	for _, f := range seed {
		s.firs[f.ID] = f
	}
	return s
}

// Save stores or updates a record.
func (s *FIRStore) Save(_ context.Context, fir domain.FIR) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firs[fir.ID] = fir
	return nil
}

// Get retrieves a record by ID.
func (s *FIRStore) Get(_ context.Context, id string) (*domain.FIR, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fir, ok := s.firs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &fir, nil
}

// List returns all records ordered by ID.
func (s *FIRStore) List(_ context.Context) ([]domain.FIR, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.FIR, 0, len(s.firs))
	for _, fir := range s.firs {
		result = append(result, fir)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
