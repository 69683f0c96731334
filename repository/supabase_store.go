package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"credit-agent/domain"
)

const (
	applicationsTable = "credit_applications"
	scoresTable       = "credit_scores"

	maxResponseBytes  = 8 << 20  // 8 MiB
	maxErrorBodyBytes = 32 << 10 // 32 KiB
)

// SupabaseConfig holds the connection settings for the hosted datastore.
type SupabaseConfig struct {
	URL        string
	ServiceKey string
}

// SupabaseStore talks to the Supabase REST API (PostgREST). It implements
// ApplicationStore on top of plain HTTP; schema lives on the Supabase side.
type SupabaseStore struct {
	url        string
	serviceKey string
	httpClient *http.Client
}

// NewSupabaseStore creates a store from the given configuration.
func NewSupabaseStore(cfg SupabaseConfig) (*SupabaseStore, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.ServiceKey == "" {
		return nil, fmt.Errorf("supabase service key is required")
	}

	parsed, err := neturl.Parse(cfg.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("supabase URL must be a valid URL")
	}

	return &SupabaseStore{
		url:        strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// request makes one HTTP request to the Supabase REST API.
func (s *SupabaseStore) request(
	ctx context.Context,
	method, table string,
	body interface{},
	query string,
) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", s.url, table)
	if query != "" {
		url += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Prefer", "return=representation")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("supabase API error %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return respBody, nil
}

// CreateApplication inserts one application record and returns the id
// assigned by the datastore.
func (s *SupabaseStore) CreateApplication(
	ctx context.Context,
	rec *domain.ApplicationRecord,
) (string, error) {
	data, err := s.request(ctx, http.MethodPost, applicationsTable, rec, "")
	if err != nil {
		return "", fmt.Errorf("create application: %w", err)
	}

	// PostgREST devuelve la representación como arreglo
	var rows []domain.ApplicationRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return "", fmt.Errorf("unmarshal application: %w", err)
	}
	if len(rows) == 0 || rows[0].ID == "" {
		return "", fmt.Errorf("create application: no id in response")
	}
	return rows[0].ID, nil
}

// CreateScore appends one score record to the user's history.
func (s *SupabaseStore) CreateScore(
	ctx context.Context,
	rec *domain.CreditScoreRecord,
) error {
	if _, err := s.request(ctx, http.MethodPost, scoresTable, rec, ""); err != nil {
		return fmt.Errorf("create score: %w", err)
	}
	return nil
}

// ListApplications returns the user's applications, newest first.
func (s *SupabaseStore) ListApplications(
	ctx context.Context,
	userID string,
) ([]domain.ApplicationRecord, error) {
	query := "user_id=eq." + neturl.QueryEscape(userID) + "&order=created_at.desc"
	data, err := s.request(ctx, http.MethodGet, applicationsTable, nil, query)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	var rows []domain.ApplicationRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal applications: %w", err)
	}
	return rows, nil
}

// ListScores returns the user's score history, newest first.
func (s *SupabaseStore) ListScores(
	ctx context.Context,
	userID string,
) ([]domain.CreditScoreRecord, error) {
	query := "user_id=eq." + neturl.QueryEscape(userID) + "&order=report_date.desc"
	data, err := s.request(ctx, http.MethodGet, scoresTable, nil, query)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}

	var rows []domain.CreditScoreRecord
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal scores: %w", err)
	}
	return rows, nil
}
