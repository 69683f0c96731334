package domain

import "time"

// Impact is the qualitative contribution of a single factor, for display only.
type Impact string

const (
	ImpactVeryPositive Impact = "Very Positive"
	ImpactPositive     Impact = "Positive"
	ImpactNeutral      Impact = "Neutral"
	ImpactNegative     Impact = "Negative"
)

// Factor explains one component of a score in human-readable terms.
type Factor struct {
	Name        string `json:"name"`
	Impact      Impact `json:"impact"`
	Description string `json:"description"`
}

// ScoreResult is the outcome of one credit score calculation. Never mutated
// after creation.
type ScoreResult struct {
	Score           int      `json:"score"`
	Factors         []Factor `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// StoredResult is the last computed result kept locally for the results view.
// Overwritten on each submission, not versioned.
type StoredResult struct {
	Score         int       `json:"score"`
	Factors       []Factor  `json:"factors"`
	ApplicationID string    `json:"applicationId"`
	Timestamp     time.Time `json:"timestamp"`
}
