package store

import (
	"sync"

	"schedule-density-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the latest analysis in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	analysis domain.Analysis
	ready    bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Analysis returns the current analysis and whether one has been published.
func (s *MemoryStore) Analysis() (domain.Analysis, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.analysis, s.ready
}

// SetAnalysis replaces the stored analysis with a new snapshot.
func (s *MemoryStore) SetAnalysis(a domain.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analysis = a
	s.ready = true
}
