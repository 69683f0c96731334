// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ScoresComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credit_agent_scores_computed_total",
		Help: "Total number of credit scores computed (cache misses included)",
	})
	ScoreCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credit_agent_score_cache_hits_total",
		Help: "Total number of score requests served from cache",
	})
	ScoreCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credit_agent_score_cache_misses_total",
		Help: "Total number of score requests that required computation",
	})
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credit_agent_submissions_total",
		Help: "Total number of application submissions, labeled by persistence outcome",
	}, []string{"outcome"})
	ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "credit_agent_scoring_duration_seconds",
		Help:    "Latency of score calculations in seconds",
		Buckets: prometheus.DefBuckets,
	})
)

// Submission outcome label values.
const (
	OutcomePersisted = "persisted"
	OutcomeLocalOnly = "local_only"
)
