package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	"credit-agent/domain"
	"credit-agent/metrics"
	"credit-agent/repository"
)

// ResultCache memoizes score results per (user, input) so that identical
// repeated submissions within the TTL window neither recompute nor trigger
// side effects in the compute function. No eviction beyond TTL staleness:
// acceptable for the intended traffic, a bounded LRU would be needed at
// larger scale.
type ResultCache struct {
	store repository.CacheRepository
	ttl   time.Duration
}

func NewResultCache(store repository.CacheRepository, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultScoreCacheTTL
	}
	return &ResultCache{store: store, ttl: ttl}
}

// Key builds the deterministic cache key for one user and input. The input
// hash covers the full normalized input, so any field change produces a new
// key and collisions across different inputs are not a concern.
func (c *ResultCache) Key(userID string, input domain.ApplicationInput) string {
	payload, err := json.Marshal(input)
	if err != nil {
		// ApplicationInput solo tiene campos serializables; no debería pasar
		return fmt.Sprintf("score:%s:invalid", userID)
	}
	return fmt.Sprintf("score:%s:%016x", userID, xxhash.Sum64(payload))
}

// GetOrCompute returns the cached result for the key when present and fresh,
// otherwise invokes compute, stores its result and returns it.
func (c *ResultCache) GetOrCompute(
	userID string,
	input domain.ApplicationInput,
	compute func() domain.ScoreResult,
) domain.ScoreResult {
	key := c.Key(userID, input)

	if raw, ok := c.store.Get(key); ok {
		var cached domain.ScoreResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			metrics.ScoreCacheHits.Inc()
			return cached
		}
		logrus.WithField("key", key).Warn("discarding undecodable cache entry")
	}

	metrics.ScoreCacheMisses.Inc()
	result := compute()

	data, err := json.Marshal(result)
	if err != nil {
		logrus.WithError(err).Warn("failed to encode score result for cache")
		return result
	}
	if err := c.store.Set(key, string(data), c.ttl); err != nil {
		// no crítico: el resultado ya está calculado
		logrus.WithError(err).Warn("failed to cache score result")
	}
	return result
}
