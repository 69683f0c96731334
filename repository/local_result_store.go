package repository

import (
	"sync"

	"credit-agent/domain"
)

// LocalResultStore keeps the last computed score result in memory so the
// results view can show it right after a submission, even when the remote
// datastore was never written. Single slot, overwritten on each submission.
type LocalResultStore struct {
	mu     sync.RWMutex
	result *domain.StoredResult
}

func NewLocalResultStore() *LocalResultStore {
	return &LocalResultStore{}
}

func (s *LocalResultStore) Store(result domain.StoredResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = &result
}

func (s *LocalResultStore) Load() (domain.StoredResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return domain.StoredResult{}, false
	}
	return *s.result, true
}
