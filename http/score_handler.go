package http

import (
	"encoding/json"
	"net/http"

	"credit-agent/domain"
	"credit-agent/service"
)

type ScoreHandler struct {
	service *service.ScoringService
}

func NewScoreHandler(service *service.ScoringService) *ScoreHandler {
	return &ScoreHandler{service: service}
}

type scoreRequest struct {
	domain.ApplicationForm
	UserID string `json:"userId"`
}

// CalculateScore scores a form without submitting an application.
func (h *ScoreHandler) CalculateScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.CalculateCreditScore(req.ApplicationForm, req.UserID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
