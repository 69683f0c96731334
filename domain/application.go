package domain

import "time"

// ApplicationForm is the raw payload produced by the multi-step application
// wizard. Every field arrives as a string; the normalizer is responsible for
// turning it into an ApplicationInput.
type ApplicationForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	EmploymentStatus  string `json:"employmentStatus"`
	AnnualIncome      string `json:"annualIncome"`
	MonthlyDebt       string `json:"monthlyDebt"`
	MonthlyExpenses   string `json:"monthlyExpenses"`
	CreditAccounts    string `json:"creditAccounts"`
	CreditUtilization string `json:"creditUtilization"`
	PaymentHistory    string `json:"paymentHistory"`
	CreditHistory     string `json:"creditHistory"`
	RecentInquiries   string `json:"recentInquiries"`

	LoanAmount  string `json:"loanAmount"`
	LoanPurpose string `json:"loanPurpose"`
	LoanTerm    string `json:"loanTerm"`
	Collateral  string `json:"collateral"`
}

// ApplicationInput is the normalized form submission. Immutable once built
// for a given scoring call.
type ApplicationInput struct {
	AnnualIncome      float64 `json:"annualIncome"`
	MonthlyDebt       float64 `json:"monthlyDebt"`
	MonthlyExpenses   float64 `json:"monthlyExpenses"`
	CreditAccounts    int     `json:"creditAccounts"`
	CreditUtilization float64 `json:"creditUtilization"`
	RecentInquiries   int     `json:"recentInquiries"`

	EmploymentStatus string `json:"employmentStatus"`
	PaymentHistory   string `json:"paymentHistory"`
	CreditHistory    string `json:"creditHistory"`

	LoanAmount  float64 `json:"loanAmount"`
	LoanPurpose string  `json:"loanPurpose"`
	LoanTerm    string  `json:"loanTerm"`
}

// Application status values as stored in credit_applications.
const (
	StatusSubmitted = "submitted"
	StatusCompleted = "completed"
	StatusApproved  = "approved"
	StatusReview    = "review"
	StatusDeclined  = "declined"
)

// PersonalInfo is the personal_info JSON blob of an application record.
type PersonalInfo struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address,omitempty"`
	EmploymentStatus string `json:"employmentStatus"`
}

// FinancialDetails is the financial_details JSON blob of an application record.
type FinancialDetails struct {
	AnnualIncome      float64 `json:"annualIncome"`
	MonthlyDebt       float64 `json:"monthlyDebt"`
	MonthlyExpenses   float64 `json:"monthlyExpenses"`
	CreditAccounts    int     `json:"creditAccounts"`
	CreditUtilization float64 `json:"creditUtilization"`
	PaymentHistory    string  `json:"paymentHistory"`
	CreditHistory     string  `json:"creditHistory"`
	RecentInquiries   int     `json:"recentInquiries"`
}

// LoanInfo is the loan_info JSON blob of an application record.
type LoanInfo struct {
	Amount     float64 `json:"amount"`
	Purpose    string  `json:"purpose"`
	Term       string  `json:"term"`
	Collateral string  `json:"collateral,omitempty"`
}

// ApplicationRecord is one persisted submission in credit_applications.
type ApplicationRecord struct {
	ID               string           `json:"id,omitempty"`
	UserID           string           `json:"user_id"`
	PersonalInfo     PersonalInfo     `json:"personal_info"`
	FinancialDetails FinancialDetails `json:"financial_details"`
	LoanInfo         LoanInfo         `json:"loan_info"`
	Status           string           `json:"status"`
	Score            int              `json:"score"`
	Recommendations  []string         `json:"recommendations,omitempty"`
	CreatedAt        time.Time        `json:"created_at,omitempty"`
}

// CreditScoreRecord is one time-series point in credit_scores, append-only.
type CreditScoreRecord struct {
	UserID     string    `json:"user_id"`
	Score      int       `json:"score"`
	Factors    []Factor  `json:"factors"`
	ReportDate time.Time `json:"report_date"`
}

// SubmissionResult is what the submission entry point returns to the caller.
type SubmissionResult struct {
	Success       bool   `json:"success"`
	Score         int    `json:"score"`
	ApplicationID string `json:"applicationId"`
	LocalOnly     bool   `json:"localOnly,omitempty"`
}

// PersistOutcome distinguishes a durable write from the degraded local-only
// path, so callers can tell the two apart instead of getting a blanket
// "success".
type PersistOutcome struct {
	ApplicationID string
	LocalOnly     bool
	Reason        string
}
