package service

import (
	"strconv"
	"strings"

	"credit-agent/domain"
)

// Normalize coerces the raw wizard payload into a typed ApplicationInput.
// Malformed or absent numeric fields degrade to a documented default instead
// of failing: the scoring engine must always produce a score, no matter how
// garbled the form is. The returned list names every field that was
// defaulted, for diagnostics only.
func Normalize(form domain.ApplicationForm) (domain.ApplicationInput, []string) {
	var defaulted []string

	parseFloat := func(field, raw string, def float64) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			defaulted = append(defaulted, field)
			return def
		}
		return v
	}
	parseInt := func(field, raw string, def int) int {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			defaulted = append(defaulted, field)
			return def
		}
		return v
	}

	input := domain.ApplicationInput{
		AnnualIncome:      parseFloat("annualIncome", form.AnnualIncome, 0),
		MonthlyDebt:       parseFloat("monthlyDebt", form.MonthlyDebt, 0),
		MonthlyExpenses:   parseFloat("monthlyExpenses", form.MonthlyExpenses, 0),
		CreditAccounts:    parseInt("creditAccounts", form.CreditAccounts, 0),
		CreditUtilization: parseFloat("creditUtilization", form.CreditUtilization, DefaultUtilizationPct),
		RecentInquiries:   parseInt("recentInquiries", form.RecentInquiries, 0),

		EmploymentStatus: strings.TrimSpace(form.EmploymentStatus),
		PaymentHistory:   strings.TrimSpace(form.PaymentHistory),
		CreditHistory:    strings.TrimSpace(form.CreditHistory),

		LoanAmount:  parseFloat("loanAmount", form.LoanAmount, 0),
		LoanPurpose: strings.TrimSpace(form.LoanPurpose),
		LoanTerm:    strings.TrimSpace(form.LoanTerm),
	}
	return input, defaulted
}
