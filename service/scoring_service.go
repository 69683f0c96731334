package service

import (
	"time"

	"credit-agent/domain"
	"credit-agent/metrics"
)

// ScoringService is the scoring entry point used by the UI: it normalizes a
// raw form, consults the result cache and evaluates the scoring engine on a
// miss.
type ScoringService struct {
	cache *ResultCache
	adj   RiskAdjustment
}

// NewScoringService creates a new ScoringService with the given result cache.
func NewScoringService(cache *ResultCache) *ScoringService {
	return &ScoringService{cache: cache}
}

// CalculateCreditScore scores a raw form submission for the given user. An
// empty user id is treated as the guest sentinel. It never fails: malformed
// fields are defaulted by the normalizer, and the engine always yields a
// score in [MinScore, MaxScore].
func (s *ScoringService) CalculateCreditScore(
	form domain.ApplicationForm,
	userID string,
) domain.ScoreResult {
	input, _ := Normalize(form)
	return s.Score(userID, input)
}

// Score computes (or fetches from cache) the result for an already
// normalized input.
func (s *ScoringService) Score(
	userID string,
	input domain.ApplicationInput,
) domain.ScoreResult {
	if userID == "" {
		userID = GuestUserID
	}
	return s.cache.GetOrCompute(userID, input, func() domain.ScoreResult {
		start := time.Now()
		result := Evaluate(input, s.adj)
		metrics.ScoringDuration.Observe(time.Since(start).Seconds())
		metrics.ScoresComputed.Inc()
		return result
	})
}
