package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arya/movie-mate-backend/internal/domain"
	"github.com/arya/movie-mate-backend/internal/service"
)

type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

type PullRecommendationsRequest struct {
	UserID string `json:"user_id"`
}

type PushRecommendationRequest struct {
	UserID string         `json:"user_id"`
	Movies []domain.Movie `json:"movies"`
}

func (h *RecommendationHandler) Pull(w http.ResponseWriter, r *http.Request) {
	var req PullRecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		http.Error(w, "User ID is required", http.StatusBadRequest)
		return
	}

	recs, err := h.recommendationService.GetByUser(r.Context(), req.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recs)
}

func (h *RecommendationHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req PushRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.Movies == nil {
		http.Error(w, "User ID and movies are required", http.StatusBadRequest)
		return
	}

	rec, err := h.recommendationService.Create(r.Context(), req.UserID, req.Movies)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}
