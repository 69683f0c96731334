package service

import (
	"credit-agent/domain"
)

// RiskAdjustment holds the secondary adjustment terms applied after the base
// calculation. Both terms default to zero; the total is bounded to
// ±MaxRiskAdjustmentPts before the final clamp.
type RiskAdjustment struct {
	Industry   int
	Geographic int
}

// Evaluate computes the full score result for a normalized input: base score,
// risk adjustment, factor explanations and recommendations. Pure and
// deterministic — identical input always yields an identical result.
func Evaluate(input domain.ApplicationInput, adj RiskAdjustment) domain.ScoreResult {
	score := applyRiskAdjustment(BaseScore(input), adj)
	factors := explainFactors(input)
	return domain.ScoreResult{
		Score:           score,
		Factors:         factors,
		Recommendations: buildRecommendations(input, score),
	}
}

// BaseScore computes the weighted-band base score, clamped to
// [MinScore, MaxScore].
func BaseScore(input domain.ApplicationInput) int {
	score := BaselineScore

	// Utilización de crédito
	switch util := input.CreditUtilization; {
	case util <= 10:
		score += 100
	case util <= 30:
		score += 80
	case util <= 50:
		score += 50
	case util <= 70:
		score += 25
	}

	// Historial de pagos
	switch input.PaymentHistory {
	case PaymentExcellent:
		score += 150
	case PaymentGood:
		score += 120
	case PaymentFair:
		score += 80
	case PaymentPoor:
		score += 30
	}

	// Situación laboral
	switch input.EmploymentStatus {
	case EmploymentFullTime:
		score += 60
	case EmploymentPartTime:
		score += 40
	case EmploymentSelfEmployed:
		score += 35
	case EmploymentUnemployed:
		// sin puntos
	default:
		score += 20
	}

	// Antigüedad crediticia
	switch input.CreditHistory {
	case HistoryOver10Years:
		score += 80
	case History5To10Years:
		score += 65
	case History2To5Years:
		score += 50
	case HistoryUnder2Years:
		score += 30
	}

	// Relación deuda/ingreso
	switch dti := DebtToIncomeRatio(input); {
	case dti <= 10:
		score += 70
	case dti <= 20:
		score += 60
	case dti <= 30:
		score += 50
	case dti <= 40:
		score += 30
	default:
		score += 10
	}

	// Consultas recientes
	switch inquiries := input.RecentInquiries; {
	case inquiries == 0:
		score += 40
	case inquiries == 1:
		score += 30
	case inquiries <= 3:
		score += 20
	case inquiries <= 5:
		score += 10
	}

	return clampScore(score)
}

// DebtToIncomeRatio returns the monthly obligations as a percentage of
// monthly income. Zero or negative income is treated as the worst case
// instead of dividing by zero.
func DebtToIncomeRatio(input domain.ApplicationInput) float64 {
	monthlyIncome := input.AnnualIncome / 12
	if monthlyIncome <= 0 {
		return WorstDebtToIncomePct
	}
	return (input.MonthlyDebt + input.MonthlyExpenses) / monthlyIncome * 100
}

func applyRiskAdjustment(score int, adj RiskAdjustment) int {
	total := adj.Industry + adj.Geographic
	if total > MaxRiskAdjustmentPts {
		total = MaxRiskAdjustmentPts
	}
	if total < -MaxRiskAdjustmentPts {
		total = -MaxRiskAdjustmentPts
	}
	return clampScore(score + total)
}

func clampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// StatusForScore maps a final score to the application status tag.
func StatusForScore(score int) string {
	switch {
	case score >= ApproveThreshold:
		return domain.StatusApproved
	case score >= ReviewThreshold:
		return domain.StatusReview
	default:
		return domain.StatusDeclined
	}
}
