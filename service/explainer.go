package service

import (
	"fmt"

	"credit-agent/domain"
)

// explainFactors derives the display factors for a result. Each impact tag
// comes from the input value itself, using the same thresholds as the scoring
// bands — never from the final score. The list is advisory output only and
// must not feed back into the calculation.
func explainFactors(input domain.ApplicationInput) []domain.Factor {
	return []domain.Factor{
		paymentHistoryFactor(input),
		utilizationFactor(input),
		debtToIncomeFactor(input),
		creditHistoryFactor(input),
		inquiriesFactor(input),
	}
}

func paymentHistoryFactor(input domain.ApplicationInput) domain.Factor {
	var impact domain.Impact
	switch input.PaymentHistory {
	case PaymentExcellent:
		impact = domain.ImpactVeryPositive
	case PaymentGood:
		impact = domain.ImpactPositive
	case PaymentFair:
		impact = domain.ImpactNeutral
	default:
		impact = domain.ImpactNegative
	}
	return domain.Factor{
		Name:        "Payment History",
		Impact:      impact,
		Description: fmt.Sprintf("Your reported payment history is %q", input.PaymentHistory),
	}
}

func utilizationFactor(input domain.ApplicationInput) domain.Factor {
	var impact domain.Impact
	switch util := input.CreditUtilization; {
	case util <= 10:
		impact = domain.ImpactVeryPositive
	case util <= 30:
		impact = domain.ImpactPositive
	case util <= 50:
		impact = domain.ImpactNeutral
	default:
		impact = domain.ImpactNegative
	}
	return domain.Factor{
		Name:        "Credit Utilization",
		Impact:      impact,
		Description: fmt.Sprintf("You are using %.0f%% of your available credit", input.CreditUtilization),
	}
}

func debtToIncomeFactor(input domain.ApplicationInput) domain.Factor {
	dti := DebtToIncomeRatio(input)
	var impact domain.Impact
	switch {
	case dti <= 20:
		impact = domain.ImpactVeryPositive
	case dti <= 30:
		impact = domain.ImpactPositive
	case dti <= 40:
		impact = domain.ImpactNeutral
	default:
		impact = domain.ImpactNegative
	}
	return domain.Factor{
		Name:        "Debt-to-Income",
		Impact:      impact,
		Description: fmt.Sprintf("Your monthly obligations are %.0f%% of your monthly income", dti),
	}
}

func creditHistoryFactor(input domain.ApplicationInput) domain.Factor {
	var impact domain.Impact
	switch input.CreditHistory {
	case HistoryOver10Years:
		impact = domain.ImpactVeryPositive
	case History5To10Years:
		impact = domain.ImpactPositive
	case History2To5Years:
		impact = domain.ImpactNeutral
	default:
		impact = domain.ImpactNegative
	}
	return domain.Factor{
		Name:        "Credit History Length",
		Impact:      impact,
		Description: fmt.Sprintf("Your credit history length is %q", input.CreditHistory),
	}
}

func inquiriesFactor(input domain.ApplicationInput) domain.Factor {
	var impact domain.Impact
	switch inquiries := input.RecentInquiries; {
	case inquiries == 0:
		impact = domain.ImpactVeryPositive
	case inquiries == 1:
		impact = domain.ImpactPositive
	case inquiries <= 3:
		impact = domain.ImpactNeutral
	default:
		impact = domain.ImpactNegative
	}
	return domain.Factor{
		Name:        "Recent Credit Inquiries",
		Impact:      impact,
		Description: fmt.Sprintf("You have %d recent credit inquiries", input.RecentInquiries),
	}
}

// buildRecommendations produces actionable advice for the weak spots of the
// application, plus general guidance at low score levels.
func buildRecommendations(input domain.ApplicationInput, score int) []string {
	var recs []string

	if input.CreditUtilization > 50 {
		recs = append(recs, "Reduce your credit card balances to improve your credit utilization ratio")
	}
	switch input.PaymentHistory {
	case PaymentExcellent, PaymentGood:
	case PaymentFair:
		recs = append(recs, "Continue making on-time payments to improve your payment history")
	default:
		recs = append(recs, "Focus on making all payments on time to rebuild your payment history")
	}
	switch input.EmploymentStatus {
	case EmploymentFullTime, EmploymentPartTime, EmploymentSelfEmployed:
	default:
		recs = append(recs, "Stable employment can help improve your creditworthiness")
	}
	if DebtToIncomeRatio(input) > 40 {
		recs = append(recs, "Consider paying down existing debt to improve your debt-to-income ratio")
	}
	switch input.CreditHistory {
	case HistoryOver10Years, History5To10Years, History2To5Years:
	default:
		recs = append(recs, "Your credit history is limited. Keep older accounts open to build credit history")
	}
	if input.RecentInquiries > 5 {
		recs = append(recs, "Avoid new credit applications until your recent inquiries age off your report")
	}

	if score < 650 {
		recs = append(recs, "Consider working with a credit counselor to develop a credit improvement plan")
	}
	if score < 600 {
		recs = append(recs, "Focus on paying down existing debt and avoid new credit applications")
	}
	if len(recs) == 0 {
		recs = append(recs, "Great job! Continue your current credit management practices")
	}
	return recs
}
