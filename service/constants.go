package service

import "time"

const (
	BaselineScore = 500 // puntaje base antes de aplicar factores
	MinScore      = 300
	MaxScore      = 850

	// Default applied when the utilization field is absent or malformed.
	DefaultUtilizationPct = 30.0

	// Worst-case debt-to-income ratio, used when monthly income is zero or
	// negative instead of dividing by zero.
	WorstDebtToIncomePct = 100.0

	// Total industry+geographic risk adjustment is bounded to this many
	// points in either direction.
	MaxRiskAdjustmentPts = 20

	// Status thresholds for a scored application.
	ApproveThreshold = 670
	ReviewThreshold  = 580

	// DefaultScoreCacheTTL is how long a memoized score result is trusted.
	DefaultScoreCacheTTL = 12 * time.Hour

	// GuestUserID is the sentinel for unauthenticated callers. Their results
	// are never written to the remote datastore.
	GuestUserID = "guest"

	// GuestApplicationID is the synthetic id returned for local-only
	// submissions.
	GuestApplicationID = "guest"
)

// Recognized categorical field values. Anything else falls into the
// lowest-scoring band of the corresponding factor.
const (
	PaymentExcellent = "excellent"
	PaymentGood      = "good"
	PaymentFair      = "fair"
	PaymentPoor      = "poor"

	EmploymentFullTime     = "full-time"
	EmploymentPartTime     = "part-time"
	EmploymentSelfEmployed = "self-employed"
	EmploymentUnemployed   = "unemployed"

	HistoryOver10Years = "over_10_years"
	History5To10Years  = "5_10_years"
	History2To5Years   = "2_5_years"
	HistoryUnder2Years = "under_2_years"
)
