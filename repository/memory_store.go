package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"credit-agent/domain"
)

// MemoryStore is an in-memory ApplicationStore used in tests and local
// development. ForceError makes every write fail, to exercise the fallback
// path of the submission flow.
type MemoryStore struct {
	mu           sync.Mutex
	applications []domain.ApplicationRecord
	scores       []domain.CreditScoreRecord

	ForceError bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateApplication(
	_ context.Context,
	rec *domain.ApplicationRecord,
) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForceError {
		return "", errors.New("store unavailable")
	}

	stored := *rec
	stored.ID = uuid.NewString()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.applications = append(s.applications, stored)
	return stored.ID, nil
}

func (s *MemoryStore) CreateScore(
	_ context.Context,
	rec *domain.CreditScoreRecord,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ForceError {
		return errors.New("store unavailable")
	}

	s.scores = append(s.scores, *rec)
	return nil
}

// ListApplications returns the user's applications, newest first.
func (s *MemoryStore) ListApplications(
	_ context.Context,
	userID string,
) ([]domain.ApplicationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.ApplicationRecord
	for i := len(s.applications) - 1; i >= 0; i-- {
		if s.applications[i].UserID == userID {
			out = append(out, s.applications[i])
		}
	}
	return out, nil
}

// ListScores returns the user's score history, newest first.
func (s *MemoryStore) ListScores(
	_ context.Context,
	userID string,
) ([]domain.CreditScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.CreditScoreRecord
	for i := len(s.scores) - 1; i >= 0; i-- {
		if s.scores[i].UserID == userID {
			out = append(out, s.scores[i])
		}
	}
	return out, nil
}
