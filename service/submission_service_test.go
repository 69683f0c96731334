package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-agent/domain"
	"credit-agent/repository"
)

func newTestSubmissionService(store repository.ApplicationStore) *SubmissionService {
	cache := NewResultCache(repository.NewMemoryCache(), 12*time.Hour)
	scoring := NewScoringService(cache)
	return NewSubmissionService(scoring, store, repository.NewLocalResultStore(), nil)
}

func strongForm() domain.ApplicationForm {
	return domain.ApplicationForm{
		FullName:          "Ada Example",
		Email:             "ada@example.com",
		AnnualIncome:      "120000",
		MonthlyDebt:       "500",
		MonthlyExpenses:   "500",
		CreditUtilization: "5",
		RecentInquiries:   "0",
		EmploymentStatus:  "full-time",
		PaymentHistory:    "excellent",
		CreditHistory:     "over_10_years",
		LoanAmount:        "15000",
		LoanPurpose:       "auto",
		LoanTerm:          "36",
	}
}

func TestSubmit_UnconfiguredStoreIsLocalOnly(t *testing.T) {
	service := newTestSubmissionService(nil)

	result := service.Submit(context.Background(), strongForm(), "user-1")

	assert.True(t, result.Success)
	assert.Equal(t, GuestApplicationID, result.ApplicationID)
	assert.True(t, result.LocalOnly)
	assert.Equal(t, MaxScore, result.Score)

	stored, ok := service.LatestResult()
	require.True(t, ok)
	assert.Equal(t, result.Score, stored.Score)
}

func TestSubmit_GuestUserNeverPersisted(t *testing.T) {
	store := repository.NewMemoryStore()
	service := newTestSubmissionService(store)

	result := service.Submit(context.Background(), strongForm(), "")

	assert.True(t, result.Success)
	assert.Equal(t, GuestApplicationID, result.ApplicationID)
	assert.True(t, result.LocalOnly)
	assert.Empty(t, service.Applications(context.Background(), GuestUserID))
}

func TestSubmit_PersistsApplicationAndScore(t *testing.T) {
	store := repository.NewMemoryStore()
	service := newTestSubmissionService(store)

	result := service.Submit(context.Background(), strongForm(), "user-1")

	assert.True(t, result.Success)
	assert.False(t, result.LocalOnly)
	assert.NotEqual(t, GuestApplicationID, result.ApplicationID)

	apps := service.Applications(context.Background(), "user-1")
	require.Len(t, apps, 1)
	assert.Equal(t, result.ApplicationID, apps[0].ID)
	assert.Equal(t, domain.StatusApproved, apps[0].Status)
	assert.Equal(t, "Ada Example", apps[0].PersonalInfo.FullName)
	assert.Equal(t, 15000.0, apps[0].LoanInfo.Amount)

	scores := service.Scores(context.Background(), "user-1")
	require.Len(t, scores, 1)
	assert.Equal(t, result.Score, scores[0].Score)
	assert.Len(t, scores[0].Factors, 5)
}

func TestSubmit_StoreFailureFallsBackToLocal(t *testing.T) {
	store := repository.NewMemoryStore()
	store.ForceError = true
	service := newTestSubmissionService(store)

	result := service.Submit(context.Background(), strongForm(), "user-1")

	// La falla remota no se propaga al usuario
	assert.True(t, result.Success)
	assert.True(t, result.LocalOnly)
	assert.Equal(t, GuestApplicationID, result.ApplicationID)

	stored, ok := service.LatestResult()
	require.True(t, ok)
	assert.Equal(t, result.Score, stored.Score)
}

func TestSubmit_IdenticalResubmissionHitsCache(t *testing.T) {
	cacheStore := repository.NewMemoryCache()
	cache := NewResultCache(cacheStore, 12*time.Hour)
	scoring := NewScoringService(cache)
	service := NewSubmissionService(scoring, nil, repository.NewLocalResultStore(), nil)

	form := strongForm()
	first := service.Submit(context.Background(), form, "user-1")
	second := service.Submit(context.Background(), form, "user-1")

	assert.Equal(t, first.Score, second.Score)

	// La entrada ya memoizada se reutiliza tal cual
	input, _ := Normalize(form)
	_, ok := cacheStore.Get(cache.Key("user-1", input))
	assert.True(t, ok)
}

func TestListings_EmptyWhenUnconfigured(t *testing.T) {
	service := newTestSubmissionService(nil)

	assert.Empty(t, service.Applications(context.Background(), "user-1"))
	assert.Empty(t, service.Scores(context.Background(), "user-1"))
}
