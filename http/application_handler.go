package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"credit-agent/domain"
	"credit-agent/service"
)

type ApplicationHandler struct {
	service *service.SubmissionService
}

func NewApplicationHandler(service *service.SubmissionService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type submitRequest struct {
	domain.ApplicationForm
	UserID string `json:"userId"`
}

// Applications dispatches on method: POST submits a new application, GET
// lists the user's previous submissions.
func (h *ApplicationHandler) Applications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.submit(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ApplicationHandler) submit(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("error decoding submission body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.Submit(r.Context(), req.ApplicationForm, req.UserID)

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		logrus.WithError(err).Error("error encoding submission response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		logrus.WithError(err).Warn("error writing submission response")
	}
}

func (h *ApplicationHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	records := h.service.Applications(r.Context(), userID)
	if records == nil {
		records = []domain.ApplicationRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// Scores lists the user's score history, newest first.
func (h *ApplicationHandler) Scores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("user_id")

	records := h.service.Scores(r.Context(), userID)
	if records == nil {
		records = []domain.CreditScoreRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// LatestResult returns the locally stored result of the last submission.
func (h *ApplicationHandler) LatestResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, ok := h.service.LatestResult()
	if !ok {
		http.Error(w, "no stored result", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
