package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"credit-agent/domain"
	"credit-agent/repository"
	"credit-agent/service"
)

func newTestHandlers() (*ScoreHandler, *ApplicationHandler) {
	cache := service.NewResultCache(repository.NewMemoryCache(), 12*time.Hour)
	scoring := service.NewScoringService(cache)
	submission := service.NewSubmissionService(
		scoring,
		repository.NewMemoryStore(),
		repository.NewLocalResultStore(),
		nil,
	)
	return NewScoreHandler(scoring), NewApplicationHandler(submission)
}

func TestCalculateScoreHandler_OK(t *testing.T) {

	handler, _ := newTestHandlers()

	body := []byte(`{
		"creditUtilization": "5",
		"paymentHistory": "excellent",
		"employmentStatus": "full-time",
		"creditHistory": "over_10_years",
		"annualIncome": "120000",
		"monthlyDebt": "500",
		"monthlyExpenses": "500",
		"recentInquiries": "0",
		"userId": "user-1"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.CalculateScore(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.ScoreResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Score != 850 {
		t.Errorf("expected score 850, got %d", result.Score)
	}
	if len(result.Factors) != 5 {
		t.Errorf("expected 5 factors, got %d", len(result.Factors))
	}
}

func TestCalculateScoreHandler_MethodNotAllowed(t *testing.T) {

	handler, _ := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/score", nil)
	w := httptest.NewRecorder()

	handler.CalculateScore(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateScoreHandler_BadRequest(t *testing.T) {

	handler, _ := newTestHandlers()

	req := httptest.NewRequest(
		http.MethodPost,
		"/score",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)
	w := httptest.NewRecorder()

	handler.CalculateScore(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSubmitApplicationHandler_OK(t *testing.T) {

	_, handler := newTestHandlers()

	body := []byte(`{
		"fullName": "Ada Example",
		"email": "ada@example.com",
		"creditUtilization": "5",
		"paymentHistory": "excellent",
		"employmentStatus": "full-time",
		"creditHistory": "over_10_years",
		"annualIncome": "120000",
		"monthlyDebt": "500",
		"monthlyExpenses": "500",
		"recentInquiries": "0",
		"loanAmount": "15000",
		"userId": "user-1"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Applications(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.SubmissionResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.Success {
		t.Error("expected success")
	}
	if result.ApplicationID == "" || result.ApplicationID == "guest" {
		t.Errorf("expected persisted application id, got %q", result.ApplicationID)
	}
}

func TestSubmitApplicationHandler_UnsupportedMediaType(t *testing.T) {

	_, handler := newTestHandlers()

	req := httptest.NewRequest(http.MethodPost, "/applications", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.Applications(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestListApplicationsHandler_EmptyForUnknownUser(t *testing.T) {

	_, handler := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/applications?user_id=nobody", nil)
	w := httptest.NewRecorder()

	handler.Applications(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("expected empty list, got %q", body)
	}
}

func TestLatestResultHandler_NotFoundBeforeSubmission(t *testing.T) {

	_, handler := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/results/latest", nil)
	w := httptest.NewRecorder()

	handler.LatestResult(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
