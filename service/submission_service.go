package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"credit-agent/domain"
	"credit-agent/metrics"
	"credit-agent/repository"
)

// SubmissionService orchestrates one application submission:
// normalize → score (cache-checked) → persist (fallback-safe) → local result.
// No step is retried; the caller resubmits the form on failure.
type SubmissionService struct {
	scoring *ScoringService
	store   repository.ApplicationStore // nil when remote persistence is not configured
	results *repository.LocalResultStore
	log     *logrus.Entry
}

// NewSubmissionService creates a SubmissionService. A nil store means every
// submission takes the local-only path.
func NewSubmissionService(
	scoring *ScoringService,
	store repository.ApplicationStore,
	results *repository.LocalResultStore,
	log *logrus.Entry,
) *SubmissionService {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SubmissionService{
		scoring: scoring,
		store:   store,
		results: results,
		log:     log,
	}
}

// Submit processes one application submission end to end. Persistence
// failures are logged and degraded to the local-only path: the user always
// gets a usable result.
func (s *SubmissionService) Submit(
	ctx context.Context,
	form domain.ApplicationForm,
	userID string,
) domain.SubmissionResult {
	if userID == "" {
		userID = GuestUserID
	}

	input, defaulted := Normalize(form)
	if len(defaulted) > 0 {
		s.log.WithField("fields", defaulted).Debug("defaulted malformed form fields")
	}

	result := s.scoring.Score(userID, input)
	outcome := s.persist(ctx, form, input, result, userID)

	// El resultado local se guarda siempre, incluso tras persistir remoto
	s.results.Store(domain.StoredResult{
		Score:         result.Score,
		Factors:       result.Factors,
		ApplicationID: outcome.ApplicationID,
		Timestamp:     time.Now().UTC(),
	})

	if outcome.LocalOnly {
		metrics.Submissions.WithLabelValues(metrics.OutcomeLocalOnly).Inc()
	} else {
		metrics.Submissions.WithLabelValues(metrics.OutcomePersisted).Inc()
	}

	return domain.SubmissionResult{
		Success:       true,
		Score:         result.Score,
		ApplicationID: outcome.ApplicationID,
		LocalOnly:     outcome.LocalOnly,
	}
}

// persist attempts the two remote writes in sequence. Any failure falls back
// to the local-only outcome instead of propagating.
func (s *SubmissionService) persist(
	ctx context.Context,
	form domain.ApplicationForm,
	input domain.ApplicationInput,
	result domain.ScoreResult,
	userID string,
) domain.PersistOutcome {
	if s.store == nil {
		return domain.PersistOutcome{
			ApplicationID: GuestApplicationID,
			LocalOnly:     true,
			Reason:        "datastore not configured",
		}
	}
	if userID == GuestUserID {
		return domain.PersistOutcome{
			ApplicationID: GuestApplicationID,
			LocalOnly:     true,
			Reason:        "unauthenticated user",
		}
	}

	now := time.Now().UTC()
	rec := buildApplicationRecord(form, input, result, userID, now)

	appID, err := s.store.CreateApplication(ctx, rec)
	if err != nil {
		s.log.WithError(err).Warn("failed to persist application, keeping local result")
		return domain.PersistOutcome{
			ApplicationID: GuestApplicationID,
			LocalOnly:     true,
			Reason:        err.Error(),
		}
	}

	scoreRec := &domain.CreditScoreRecord{
		UserID:     userID,
		Score:      result.Score,
		Factors:    result.Factors,
		ReportDate: now,
	}
	if err := s.store.CreateScore(ctx, scoreRec); err != nil {
		s.log.WithError(err).Warn("failed to persist score record, keeping local result")
		return domain.PersistOutcome{
			ApplicationID: GuestApplicationID,
			LocalOnly:     true,
			Reason:        err.Error(),
		}
	}

	return domain.PersistOutcome{ApplicationID: appID}
}

// Applications returns the user's submissions, newest first. Mirrors the
// dashboard contract: unavailable or failing storage yields an empty list,
// never an error.
func (s *SubmissionService) Applications(
	ctx context.Context,
	userID string,
) []domain.ApplicationRecord {
	if s.store == nil || userID == "" {
		return nil
	}
	records, err := s.store.ListApplications(ctx, userID)
	if err != nil {
		s.log.WithError(err).Warn("failed to list applications")
		return nil
	}
	return records
}

// Scores returns the user's score history, newest first, with the same
// degrade-to-empty contract as Applications.
func (s *SubmissionService) Scores(
	ctx context.Context,
	userID string,
) []domain.CreditScoreRecord {
	if s.store == nil || userID == "" {
		return nil
	}
	records, err := s.store.ListScores(ctx, userID)
	if err != nil {
		s.log.WithError(err).Warn("failed to list scores")
		return nil
	}
	return records
}

// LatestResult returns the locally stored result of the last submission.
func (s *SubmissionService) LatestResult() (domain.StoredResult, bool) {
	return s.results.Load()
}

func buildApplicationRecord(
	form domain.ApplicationForm,
	input domain.ApplicationInput,
	result domain.ScoreResult,
	userID string,
	now time.Time,
) *domain.ApplicationRecord {
	return &domain.ApplicationRecord{
		UserID: userID,
		PersonalInfo: domain.PersonalInfo{
			FullName:         form.FullName,
			Email:            form.Email,
			Phone:            form.Phone,
			Address:          form.Address,
			EmploymentStatus: input.EmploymentStatus,
		},
		FinancialDetails: domain.FinancialDetails{
			AnnualIncome:      input.AnnualIncome,
			MonthlyDebt:       input.MonthlyDebt,
			MonthlyExpenses:   input.MonthlyExpenses,
			CreditAccounts:    input.CreditAccounts,
			CreditUtilization: input.CreditUtilization,
			PaymentHistory:    input.PaymentHistory,
			CreditHistory:     input.CreditHistory,
			RecentInquiries:   input.RecentInquiries,
		},
		LoanInfo: domain.LoanInfo{
			Amount:     input.LoanAmount,
			Purpose:    input.LoanPurpose,
			Term:       input.LoanTerm,
			Collateral: form.Collateral,
		},
		Status:          StatusForScore(result.Score),
		Score:           result.Score,
		Recommendations: result.Recommendations,
		CreatedAt:       now,
	}
}
